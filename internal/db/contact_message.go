package db

import "gorm.io/gorm"

// ContactMessage is a public contact form submission. CreatedAt is the
// submission time; Status is only changed by staff.
type ContactMessage struct {
	gorm.Model
	Name    string        `gorm:"size:255;not null"`
	Email   string        `gorm:"size:254;not null"`
	Subject string        `gorm:"size:255;not null"`
	Message string        `gorm:"type:text;not null"`
	Status  ContactStatus `gorm:"size:20;default:new;index"`
}
