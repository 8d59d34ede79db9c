package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const AppointmentScheduled = "scheduled"

// Session is one visitor's record, keyed by the opaque id issued in their
// cookie. Expiry follows the cookie lifecycle; nothing here deletes sessions.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// ChatTurn pairs a user input with the assistant's reply. Turns are
// append-only and never reordered.
type ChatTurn struct {
	ID            uint      `gorm:"primaryKey"`
	SessionID     uuid.UUID `gorm:"type:uuid;index"`
	UserText      string
	AssistantText string
	Mode          string `gorm:"size:32"`
	Timestamp     time.Time
}

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;index"`
	Date      string
	Specialty string
	Status    string `gorm:"size:20;not null"`
	CreatedAt time.Time
}

// HealthReading is one timestamped value in a metric's series. Value is
// stored as JSON so callers may submit any scalar.
type HealthReading struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;index"`
	Metric    string    `gorm:"size:64;index"`
	Value     datatypes.JSON
	Timestamp time.Time
}
