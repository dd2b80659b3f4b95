package view

import (
	"time"

	"github.com/studentorg/internal/db"
)

const dateLayout = "2006-01-02"

// Event is the wire form of db.Event.
type Event struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewsArticle is the wire form of db.NewsArticle.
type NewsArticle struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Image         string    `json:"image"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	IsPublished   bool      `json:"is_published"`
}

// SiteSettings is the wire form of db.SiteSettings.
type SiteSettings struct {
	ID          uint      `json:"id"`
	SiteName    string    `json:"site_name"`
	SiteTagline string    `json:"site_tagline"`
	Logo        string    `json:"logo"`
	Favicon     string    `json:"favicon"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Facebook    string    `json:"facebook"`
	Twitter     string    `json:"twitter"`
	Instagram   string    `json:"instagram"`
	LinkedIn    string    `json:"linkedin"`
	FooterText  string    `json:"footer_text"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HeroSection is the wire form of db.HeroSection.
type HeroSection struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"background_image"`
	CTAText         string `json:"cta_text"`
	CTALink         string `json:"cta_link"`
	IsActive        bool   `json:"is_active"`
	Order           int    `json:"order"`
}

// AboutSection is the wire form of db.AboutSection.
type AboutSection struct {
	ID         uint      `json:"id"`
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Mission    string    `json:"mission"`
	Vision     string    `json:"vision"`
	Values     string    `json:"values"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Service is the wire form of db.Service.
type Service struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// TeamMember is the wire form of db.TeamMember.
type TeamMember struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	Achievements string `json:"achievements"`
	Photo        string `json:"photo"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Facebook     string `json:"facebook"`
	Twitter      string `json:"twitter"`
	LinkedIn     string `json:"linkedin"`
	IsActive     bool   `json:"is_active"`
	Order        int    `json:"order"`
}

// Testimonial is the wire form of db.Testimonial.
type Testimonial struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Photo     string    `json:"photo"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	Order     int       `json:"order"`
}

// Gallery is the wire form of db.Gallery.
type Gallery struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	IsActive     bool      `json:"is_active"`
	ShowInSlider bool      `json:"show_in_slider"`
	CreatedAt    time.Time `json:"created_at"`
	Order        int       `json:"order"`
}

// FAQ is the wire form of db.FAQ.
type FAQ struct {
	ID        uint      `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// FormatDate renders an event date as YYYY-MM-DD.
func FormatDate(e db.Event) string {
	return time.Time(e.Date).Format(dateLayout)
}

// NewEvent builds the public event payload.
func NewEvent(e db.Event) Event {
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Date:        FormatDate(e),
		StartTime:   e.StartTime.String(),
		EndTime:     e.EndTime.String(),
		Location:    e.Location,
		Description: e.Description,
		Image:       e.Image,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

// NewNewsArticle builds the public article payload.
func NewNewsArticle(n db.NewsArticle) NewsArticle {
	return NewsArticle{
		ID:            n.ID,
		Title:         n.Title,
		Slug:          n.Slug,
		Image:         n.Image,
		Excerpt:       n.Excerpt,
		Content:       n.Content,
		Author:        n.Author,
		PublishedDate: n.PublishedDate,
		IsPublished:   n.IsPublished,
	}
}

// NewSiteSettings builds the public settings payload.
func NewSiteSettings(s db.SiteSettings) SiteSettings {
	return SiteSettings{
		ID:          s.ID,
		SiteName:    s.SiteName,
		SiteTagline: s.SiteTagline,
		Logo:        s.Logo,
		Favicon:     s.Favicon,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Facebook:    s.Facebook,
		Twitter:     s.Twitter,
		Instagram:   s.Instagram,
		LinkedIn:    s.LinkedIn,
		FooterText:  s.FooterText,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewHeroSection builds a hero banner payload.
func NewHeroSection(h db.HeroSection) HeroSection {
	return HeroSection{
		ID:              h.ID,
		Title:           h.Title,
		Subtitle:        h.Subtitle,
		BackgroundImage: h.BackgroundImage,
		CTAText:         h.CTAText,
		CTALink:         h.CTALink,
		IsActive:        h.IsActive,
		Order:           h.Order,
	}
}

// NewAboutSection builds the about payload.
func NewAboutSection(a db.AboutSection) AboutSection {
	return AboutSection{
		ID:         a.ID,
		Heading:    a.Heading,
		Subheading: a.Subheading,
		Content:    a.Content,
		Image:      a.Image,
		Mission:    a.Mission,
		Vision:     a.Vision,
		Values:     a.Values,
		UpdatedAt:  a.UpdatedAt,
	}
}

// NewService builds a service payload.
func NewService(s db.Service) Service {
	return Service{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		IsActive:    s.IsActive,
		Order:       s.Order,
	}
}

// NewTeamMember builds a team member payload.
func NewTeamMember(m db.TeamMember) TeamMember {
	return TeamMember{
		ID:           m.ID,
		Name:         m.Name,
		Position:     string(m.Position),
		Bio:          m.Bio,
		Achievements: m.Achievements,
		Photo:        m.Photo,
		Email:        m.Email,
		Phone:        m.Phone,
		Facebook:     m.Facebook,
		Twitter:      m.Twitter,
		LinkedIn:     m.LinkedIn,
		IsActive:     m.IsActive,
		Order:        m.Order,
	}
}

// NewTestimonial builds a testimonial payload.
func NewTestimonial(t db.Testimonial) Testimonial {
	return Testimonial{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Photo:     t.Photo,
		Rating:    t.Rating,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		Order:     t.Order,
	}
}

// NewGallery builds a gallery image payload.
func NewGallery(g db.Gallery) Gallery {
	return Gallery{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		Image:        g.Image,
		Category:     g.Category,
		IsActive:     g.IsActive,
		ShowInSlider: g.ShowInSlider,
		CreatedAt:    g.CreatedAt,
		Order:        g.Order,
	}
}

// NewFAQ builds a FAQ payload.
func NewFAQ(f db.FAQ) FAQ {
	return FAQ{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		IsActive:  f.IsActive,
		Order:     f.Order,
		CreatedAt: f.CreatedAt,
	}
}

// Map converts a slice of entities with fn.
func Map[T any, V any](items []T, fn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
