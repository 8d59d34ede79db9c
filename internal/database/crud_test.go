package database_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ubuzima-backend/internal/database"
)

func createDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())
	return db
}

func TestEnsureSessionIdempotent(t *testing.T) {
	db := createDB(t)
	sessionID := uuid.New()

	require.NoError(t, database.EnsureSession(db, sessionID))
	require.NoError(t, database.EnsureSession(db, sessionID))

	var count int64
	require.NoError(t, db.Model(&database.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestChatHistoryOrdering(t *testing.T) {
	db := createDB(t)
	sessionID := uuid.New()
	require.NoError(t, database.EnsureSession(db, sessionID))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		turn := &database.ChatTurn{
			SessionID:     sessionID,
			UserText:      text,
			AssistantText: "reply to " + text,
			Mode:          "health",
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, database.SaveChatTurn(db, turn))
	}

	history, err := database.GetChatHistory(db, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].UserText)
	assert.Equal(t, "third", history[2].UserText)
}

func TestChatHistoryTieBreaksOnInsertionOrder(t *testing.T) {
	db := createDB(t)
	sessionID := uuid.New()
	require.NoError(t, database.EnsureSession(db, sessionID))

	// Same-timestamp turns keep insertion order via the id tiebreaker.
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for _, text := range []string{"a", "b", "c"} {
		turn := &database.ChatTurn{SessionID: sessionID, UserText: text, Mode: "health", Timestamp: ts}
		require.NoError(t, database.SaveChatTurn(db, turn))
	}

	history, err := database.GetChatHistory(db, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "a", history[0].UserText)
	assert.Equal(t, "b", history[1].UserText)
	assert.Equal(t, "c", history[2].UserText)
}

func TestAppointmentsOrderedByCreation(t *testing.T) {
	db := createDB(t)
	sessionID := uuid.New()
	require.NoError(t, database.EnsureSession(db, sessionID))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, specialty := range []string{"Surgery", "Pediatrics"} {
		appointment := &database.Appointment{
			ID:        uuid.New(),
			SessionID: sessionID,
			Date:      "2026-09-15",
			Specialty: specialty,
			Status:    database.AppointmentScheduled,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, database.SaveAppointment(db, appointment))
	}

	appointments, err := database.GetAppointments(db, sessionID)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Surgery", appointments[0].Specialty)
	assert.Equal(t, "Pediatrics", appointments[1].Specialty)
}
