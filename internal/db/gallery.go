package db

import "gorm.io/gorm"

// Gallery is a single image in the public photo gallery.
type Gallery struct {
	gorm.Model
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Image        string `gorm:"size:500;not null"`
	Category     string `gorm:"size:100;index"`
	IsActive     bool   `gorm:"index"`
	ShowInSlider bool
	Order        int `gorm:"column:display_order;default:0"`
}

// TableName keeps "gallery" rather than the pluralized default.
func (Gallery) TableName() string {
	return "gallery"
}
