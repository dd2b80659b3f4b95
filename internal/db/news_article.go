package db

import (
	"time"

	"gorm.io/gorm"
)

// NewsArticle is a published (or draft) news post addressed by slug.
type NewsArticle struct {
	gorm.Model
	Title         string    `gorm:"size:255;not null"`
	Slug          string    `gorm:"size:255;uniqueIndex;not null"`
	Image         string    `gorm:"size:500;not null"`
	Excerpt       string    `gorm:"type:text;not null"`
	Content       string    `gorm:"type:text;not null"`
	Author        string    `gorm:"size:100;default:Admin"`
	PublishedDate time.Time `gorm:"index"`
	IsPublished   bool      `gorm:"index"`
	ShowInSlider  bool
}
