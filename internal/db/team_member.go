package db

import "gorm.io/gorm"

// TeamMember is a person listed on the team page.
type TeamMember struct {
	gorm.Model
	Name         string       `gorm:"size:255;not null"`
	Position     TeamPosition `gorm:"size:50;not null"`
	Bio          string       `gorm:"type:text"`
	Achievements string       `gorm:"type:text"`
	Photo        string       `gorm:"size:500"`
	Email        string       `gorm:"size:254"`
	Phone        string       `gorm:"size:20"`
	Facebook     string       `gorm:"size:200"`
	Twitter      string       `gorm:"size:200"`
	LinkedIn     string       `gorm:"size:200"`
	IsActive     bool         `gorm:"index"`
	Order        int          `gorm:"column:display_order;default:0"`
}
