package service

import (
	"strings"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

const (
	DefaultHeroTitle    = "Welcome to Our Student Organization"
	DefaultHeroSubtitle = "Join us in making a difference in our community"
	DefaultHeroCTAText  = "Get Involved"
	DefaultHeroCTALink  = "#about"
	DefaultRating       = 5
)

// HeroInput describes a new homepage banner.
type HeroInput struct {
	Title           string `json:"title" validate:"max=255"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"background_image" validate:"max=500"`
	CTAText         string `json:"cta_text" validate:"max=100"`
	CTALink         string `json:"cta_link" validate:"max=255"`
	IsActive        *bool  `json:"is_active"`
	Order           int    `json:"order"`
}

// ServiceInput describes a new feature card.
type ServiceInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required,max=100"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order"`
}

// TeamMemberInput describes a new team member.
type TeamMemberInput struct {
	Name         string `json:"name" validate:"required,max=255"`
	Position     string `json:"position" validate:"required,position"`
	Bio          string `json:"bio"`
	Achievements string `json:"achievements"`
	Photo        string `json:"photo" validate:"max=500"`
	Email        string `json:"email" validate:"omitempty,email,max=254"`
	Phone        string `json:"phone" validate:"max=20"`
	Facebook     string `json:"facebook" validate:"max=200"`
	Twitter      string `json:"twitter" validate:"max=200"`
	LinkedIn     string `json:"linkedin" validate:"max=200"`
	IsActive     *bool  `json:"is_active"`
	Order        int    `json:"order"`
}

// TestimonialInput describes a new testimonial. A zero rating means the default.
type TestimonialInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Role     string `json:"role" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Photo    string `json:"photo" validate:"max=500"`
	Rating   int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	IsActive *bool  `json:"is_active"`
	Order    int    `json:"order"`
}

// FAQInput describes a new question/answer pair.
type FAQInput struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"max=100"`
	IsActive *bool  `json:"is_active"`
	Order    int    `json:"order"`
}

// ContentService serves the ordered, active-only lists of site content.
type ContentService struct {
	db *gorm.DB
}

// NewContentService creates a ContentService.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ListHeroes returns active hero sections by display order.
func (s *ContentService) ListHeroes() ([]db.HeroSection, error) {
	var heroes []db.HeroSection
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("id asc").
		Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// ListServices returns active services by display order.
func (s *ContentService) ListServices() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("id asc").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListTeam returns active team members by display order, then name.
func (s *ContentService) ListTeam() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("name asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListTestimonials returns active testimonials, newest first within an order.
func (s *ContentService) ListTestimonials() ([]db.Testimonial, error) {
	var testimonials []db.Testimonial
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at desc").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// ListFAQs returns active FAQs, optionally restricted to one category.
func (s *ContentService) ListFAQs(category string) ([]db.FAQ, error) {
	query := s.db.Where("is_active = ?", true)
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("category = ?", category)
	}

	var faqs []db.FAQ
	if err := query.Order("display_order asc").Order("created_at asc").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// CreateHero inserts a hero section, filling the stock banner texts.
func (s *ContentService) CreateHero(input HeroInput) (*db.HeroSection, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	hero := db.HeroSection{
		Title:           orDefault(input.Title, DefaultHeroTitle),
		Subtitle:        orDefault(input.Subtitle, DefaultHeroSubtitle),
		BackgroundImage: strings.TrimSpace(input.BackgroundImage),
		CTAText:         orDefault(input.CTAText, DefaultHeroCTAText),
		CTALink:         orDefault(input.CTALink, DefaultHeroCTALink),
		IsActive:        boolOr(input.IsActive, true),
		Order:           input.Order,
	}
	if err := s.db.Create(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// CreateService inserts a service card.
func (s *ContentService) CreateService(input ServiceInput) (*db.Service, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	item := db.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		IsActive:    boolOr(input.IsActive, true),
		Order:       input.Order,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateTeamMember inserts a team member.
func (s *ContentService) CreateTeamMember(input TeamMemberInput) (*db.TeamMember, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	member := db.TeamMember{
		Name:         strings.TrimSpace(input.Name),
		Position:     db.TeamPosition(input.Position),
		Bio:          strings.TrimSpace(input.Bio),
		Achievements: strings.TrimSpace(input.Achievements),
		Photo:        strings.TrimSpace(input.Photo),
		Email:        normalizeEmail(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Facebook:     strings.TrimSpace(input.Facebook),
		Twitter:      strings.TrimSpace(input.Twitter),
		LinkedIn:     strings.TrimSpace(input.LinkedIn),
		IsActive:     boolOr(input.IsActive, true),
		Order:        input.Order,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateTestimonial inserts a testimonial.
func (s *ContentService) CreateTestimonial(input TestimonialInput) (*db.Testimonial, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	rating := input.Rating
	if rating == 0 {
		rating = DefaultRating
	}
	item := db.Testimonial{
		Name:     strings.TrimSpace(input.Name),
		Role:     strings.TrimSpace(input.Role),
		Content:  strings.TrimSpace(input.Content),
		Photo:    strings.TrimSpace(input.Photo),
		Rating:   rating,
		IsActive: boolOr(input.IsActive, true),
		Order:    input.Order,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateFAQ inserts a FAQ entry.
func (s *ContentService) CreateFAQ(input FAQInput) (*db.FAQ, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	item := db.FAQ{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
		Category: strings.TrimSpace(input.Category),
		IsActive: boolOr(input.IsActive, true),
		Order:    input.Order,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
