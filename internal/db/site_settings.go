package db

import "gorm.io/gorm"

// SiteSettings stores the global site identity. Only the row with
// SingletonID may exist.
type SiteSettings struct {
	gorm.Model
	SiteName    string `gorm:"size:255;default:Student Organization"`
	SiteTagline string `gorm:"size:255;default:Empowering Students, Building Communities"`
	Logo        string `gorm:"size:500"`
	Favicon     string `gorm:"size:500"`
	Email       string `gorm:"size:254;default:info@studentorg.com"`
	Phone       string `gorm:"size:20"`
	Address     string `gorm:"type:text"`
	Facebook    string `gorm:"size:200"`
	Twitter     string `gorm:"size:200"`
	Instagram   string `gorm:"size:200"`
	LinkedIn    string `gorm:"size:200"`
	FooterText  string `gorm:"type:text"`
}

// TableName keeps the singular table name used by the singleton helpers.
func (SiteSettings) TableName() string {
	return "site_settings"
}
