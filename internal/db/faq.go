package db

import "gorm.io/gorm"

// FAQ is a question/answer pair, optionally grouped by category.
type FAQ struct {
	gorm.Model
	Question string `gorm:"size:500;not null"`
	Answer   string `gorm:"type:text;not null"`
	Category string `gorm:"size:100;index"`
	IsActive bool   `gorm:"index"`
	Order    int    `gorm:"column:display_order;default:0"`
}

// TableName avoids gorm's "fa_qs" snake casing.
func (FAQ) TableName() string {
	return "faqs"
}
