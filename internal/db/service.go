package db

import "gorm.io/gorm"

// Service is a feature card ("what we do") on the homepage.
type Service struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Icon        string `gorm:"size:100;not null"`
	IsActive    bool   `gorm:"index"`
	Order       int    `gorm:"column:display_order;default:0"`
}
