package db

import "gorm.io/gorm"

// AboutSection is the singleton "about us" block. Values holds one value per line.
type AboutSection struct {
	gorm.Model
	Heading    string `gorm:"size:255;default:About Us"`
	Subheading string `gorm:"size:255"`
	Content    string `gorm:"type:text;not null"`
	Image      string `gorm:"size:500"`
	Mission    string `gorm:"type:text"`
	Vision     string `gorm:"type:text"`
	Values     string `gorm:"type:text"`
}

// TableName keeps the singular table name used by the singleton helpers.
func (AboutSection) TableName() string {
	return "about_section"
}
