package db

import (
	"time"

	"gorm.io/gorm"
)

// BloodDonation is a donor registration for a blood drive.
type BloodDonation struct {
	gorm.Model
	Name              string         `gorm:"size:255;not null"`
	Email             string         `gorm:"size:254;not null"`
	Phone             string         `gorm:"size:20;not null"`
	BloodType         BloodType      `gorm:"size:3;not null;index"`
	Age               int            `gorm:"not null"`
	Address           string         `gorm:"type:text;not null"`
	MedicalConditions string         `gorm:"type:text"`
	Status            DonationStatus `gorm:"size:20;default:pending;index"`
	RegisteredAt      time.Time      `gorm:"index"`
}
