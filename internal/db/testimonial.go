package db

import "gorm.io/gorm"

// Testimonial is a quote from a student, alumnus or member. Rating is 1-5.
type Testimonial struct {
	gorm.Model
	Name     string `gorm:"size:255;not null"`
	Role     string `gorm:"size:255;not null"`
	Content  string `gorm:"type:text;not null"`
	Photo    string `gorm:"size:500"`
	Rating   int    `gorm:"default:5"`
	IsActive bool   `gorm:"index"`
	Order    int    `gorm:"column:display_order;default:0"`
}
