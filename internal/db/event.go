package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is a scheduled organization activity shown on the public site.
type Event struct {
	gorm.Model
	Title        string         `gorm:"size:255;not null"`
	Date         datatypes.Date `gorm:"index;not null"`
	StartTime    datatypes.Time `gorm:"not null"`
	EndTime      datatypes.Time `gorm:"not null"`
	Location     string         `gorm:"size:255;not null"`
	Description  string         `gorm:"type:text;not null"`
	Image        string         `gorm:"size:500"`
	IsActive     bool           `gorm:"index"`
	ShowInSlider bool
}
