package database

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

// EnsureSession creates the session record on first contact. Safe to call on
// every request.
func EnsureSession(db *gorm.DB, sessionID uuid.UUID) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	var session Session
	return db.Where(Session{ID: sessionID}).
		Attrs(Session{CreatedAt: time.Now().UTC()}).
		FirstOrCreate(&session).Error
}

func SaveChatTurn(db *gorm.DB, turn *ChatTurn) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.Create(turn).Error
}

func GetChatHistory(db *gorm.DB, sessionID uuid.UUID) ([]ChatTurn, error) {
	var history []ChatTurn
	err := db.Where("session_id = ?", sessionID).Order("timestamp ASC, id ASC").Find(&history).Error
	return history, err
}

func SaveAppointment(db *gorm.DB, appointment *Appointment) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.Create(appointment).Error
}

func GetAppointments(db *gorm.DB, sessionID uuid.UUID) ([]Appointment, error) {
	var appointments []Appointment
	err := db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&appointments).Error
	return appointments, err
}

func SaveHealthReading(db *gorm.DB, reading *HealthReading) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.Create(reading).Error
}

func GetHealthReadings(db *gorm.DB, sessionID uuid.UUID) ([]HealthReading, error) {
	var readings []HealthReading
	err := db.Where("session_id = ?", sessionID).Order("timestamp ASC, id ASC").Find(&readings).Error
	return readings, err
}
