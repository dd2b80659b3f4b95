package service

import (
	"time"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

const recentContactWindow = 7 * 24 * time.Hour

// BloodTypeCount is one bucket of the donor histogram.
type BloodTypeCount struct {
	BloodType string `json:"blood_type"`
	Count     int64  `json:"count"`
}

// Stats summarizes form submissions.
type Stats struct {
	Contacts              int64            `json:"contacts"`
	Subscribers           int64            `json:"subscribers"`
	EventRegistrations    int64            `json:"event_registrations"`
	BloodDonations        int64            `json:"blood_donations"`
	RecentContacts        int64            `json:"recent_contacts"`
	BloodTypeDistribution []BloodTypeCount `json:"blood_type_distribution"`
}

// StatsService computes dashboard counters.
type StatsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStatsService creates a StatsService.
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb, now: time.Now}
}

// Collect counts submissions. Subscribers only include active ones and
// RecentContacts covers the last seven days.
func (s *StatsService) Collect() (*Stats, error) {
	stats := &Stats{BloodTypeDistribution: []BloodTypeCount{}}

	if err := s.db.Model(&db.ContactMessage{}).Count(&stats.Contacts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&db.NewsletterSubscriber{}).Where("is_active = ?", true).Count(&stats.Subscribers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&db.EventRegistration{}).Count(&stats.EventRegistrations).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&db.BloodDonation{}).Count(&stats.BloodDonations).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&db.ContactMessage{}).
		Where("created_at >= ?", s.now().Add(-recentContactWindow)).
		Count(&stats.RecentContacts).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&db.BloodDonation{}).
		Select("blood_type, COUNT(id) AS count").
		Group("blood_type").
		Order("count desc").Order("blood_type asc").
		Scan(&stats.BloodTypeDistribution).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
