package service

import (
	"errors"
	"fmt"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

const (
	DefaultSiteName    = "Student Organization"
	DefaultSiteTagline = "Empowering Students, Building Communities"
	DefaultSiteEmail   = "info@studentorg.com"
	DefaultFooterText  = "© 2026 Student Organization. All rights reserved."
	DefaultAboutTitle  = "About Us"
)

// SiteSettingsInput is the admin-editable part of db.SiteSettings.
type SiteSettingsInput struct {
	SiteName    string `json:"site_name" validate:"max=255"`
	SiteTagline string `json:"site_tagline" validate:"max=255"`
	Logo        string `json:"logo" validate:"max=500"`
	Favicon     string `json:"favicon" validate:"max=500"`
	Email       string `json:"email" validate:"omitempty,email,max=254"`
	Phone       string `json:"phone" validate:"max=20"`
	Address     string `json:"address"`
	Facebook    string `json:"facebook" validate:"max=200"`
	Twitter     string `json:"twitter" validate:"max=200"`
	Instagram   string `json:"instagram" validate:"max=200"`
	LinkedIn    string `json:"linkedin" validate:"max=200"`
	FooterText  string `json:"footer_text"`
}

// AboutInput is the admin-editable part of db.AboutSection.
type AboutInput struct {
	Heading    string `json:"heading" validate:"max=255"`
	Subheading string `json:"subheading" validate:"max=255"`
	Content    string `json:"content" validate:"required"`
	Image      string `json:"image" validate:"max=500"`
	Mission    string `json:"mission"`
	Vision     string `json:"vision"`
	Values     string `json:"values"`
}

var (
	settingsColumns = []string{"SiteName", "SiteTagline", "Logo", "Favicon", "Email", "Phone", "Address", "Facebook", "Twitter", "Instagram", "LinkedIn", "FooterText"}
	aboutColumns    = []string{"Heading", "Subheading", "Content", "Image", "Mission", "Vision", "Values"}
)

// SiteService manages the two singleton records: site settings and the
// about section.
type SiteService struct {
	db *gorm.DB
}

// NewSiteService creates a SiteService.
func NewSiteService(gdb *gorm.DB) *SiteService {
	return &SiteService{db: gdb}
}

// GetSettings returns the settings row or ErrSettingsNotConfigured.
func (s *SiteService) GetSettings() (*db.SiteSettings, error) {
	var settings db.SiteSettings
	if err := s.db.Order("id asc").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		return nil, err
	}
	return &settings, nil
}

// EnsureSettings creates the settings row from input unless one exists, in
// which case the existing row is returned untouched.
func (s *SiteService) EnsureSettings(input SiteSettingsInput) (*db.SiteSettings, bool, error) {
	if err := validateStruct(input); err != nil {
		return nil, false, err
	}
	candidate := settingsFromInput(input)
	return db.EnsureSingleton(s.db, &candidate)
}

// SaveSettings creates the settings row or overwrites the existing one.
func (s *SiteService) SaveSettings(input SiteSettingsInput) (*db.SiteSettings, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var saved *db.SiteSettings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		candidate := settingsFromInput(input)
		stored, created, err := db.EnsureSingleton(tx, &candidate)
		if err != nil {
			return err
		}
		if !created {
			if err := tx.Model(stored).Select(settingsColumns).Updates(&candidate).Error; err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
			if err := tx.First(stored, db.SingletonID).Error; err != nil {
				return err
			}
		}
		saved = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetAbout returns the about section or ErrAboutNotConfigured.
func (s *SiteService) GetAbout() (*db.AboutSection, error) {
	var about db.AboutSection
	if err := s.db.Order("id asc").First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotConfigured
		}
		return nil, err
	}
	return &about, nil
}

// EnsureAbout creates the about section unless one exists.
func (s *SiteService) EnsureAbout(input AboutInput) (*db.AboutSection, bool, error) {
	if err := validateStruct(input); err != nil {
		return nil, false, err
	}
	candidate := aboutFromInput(input)
	return db.EnsureSingleton(s.db, &candidate)
}

// SaveAbout creates the about section or overwrites the existing one.
func (s *SiteService) SaveAbout(input AboutInput) (*db.AboutSection, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var saved *db.AboutSection
	err := s.db.Transaction(func(tx *gorm.DB) error {
		candidate := aboutFromInput(input)
		stored, created, err := db.EnsureSingleton(tx, &candidate)
		if err != nil {
			return err
		}
		if !created {
			if err := tx.Model(stored).Select(aboutColumns).Updates(&candidate).Error; err != nil {
				return fmt.Errorf("update about: %w", err)
			}
			if err := tx.First(stored, db.SingletonID).Error; err != nil {
				return err
			}
		}
		saved = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func settingsFromInput(input SiteSettingsInput) db.SiteSettings {
	settings := db.SiteSettings{
		SiteName:    orDefault(input.SiteName, DefaultSiteName),
		SiteTagline: orDefault(input.SiteTagline, DefaultSiteTagline),
		Logo:        orDefault(input.Logo, ""),
		Favicon:     orDefault(input.Favicon, ""),
		Email:       orDefault(normalizeEmail(input.Email), DefaultSiteEmail),
		Phone:       orDefault(input.Phone, ""),
		Address:     orDefault(input.Address, ""),
		Facebook:    orDefault(input.Facebook, ""),
		Twitter:     orDefault(input.Twitter, ""),
		Instagram:   orDefault(input.Instagram, ""),
		LinkedIn:    orDefault(input.LinkedIn, ""),
		FooterText:  orDefault(input.FooterText, DefaultFooterText),
	}
	settings.ID = db.SingletonID
	return settings
}

func aboutFromInput(input AboutInput) db.AboutSection {
	about := db.AboutSection{
		Heading:    orDefault(input.Heading, DefaultAboutTitle),
		Subheading: orDefault(input.Subheading, ""),
		Content:    orDefault(input.Content, ""),
		Image:      orDefault(input.Image, ""),
		Mission:    orDefault(input.Mission, ""),
		Vision:     orDefault(input.Vision, ""),
		Values:     orDefault(input.Values, ""),
	}
	about.ID = db.SingletonID
	return about
}
