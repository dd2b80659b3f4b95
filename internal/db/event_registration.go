package db

import (
	"time"

	"gorm.io/gorm"
)

// EventRegistration records a sign-up for an event. EventID is free text and
// is not checked against the events table.
type EventRegistration struct {
	gorm.Model
	Name           string    `gorm:"size:255;not null"`
	Email          string    `gorm:"size:254;not null"`
	Phone          string    `gorm:"size:20;not null"`
	EventID        string    `gorm:"size:255;not null;index"`
	AdditionalInfo string    `gorm:"type:text"`
	RegisteredAt   time.Time `gorm:"index"`
}
