package service

import (
	"strings"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

// Content kinds accepted by SetActive.
var activeModels = map[string]func() interface{}{
	"events":       func() interface{} { return &db.Event{} },
	"heroes":       func() interface{} { return &db.HeroSection{} },
	"services":     func() interface{} { return &db.Service{} },
	"team":         func() interface{} { return &db.TeamMember{} },
	"testimonials": func() interface{} { return &db.Testimonial{} },
	"gallery":      func() interface{} { return &db.Gallery{} },
	"faqs":         func() interface{} { return &db.FAQ{} },
}

// SubmissionFilter narrows an admin submission listing.
type SubmissionFilter struct {
	Status    string
	BloodType string
	EventID   string
	Search    string
	Page      int
	PerPage   int
}

// AdminService implements the staff-only bulk actions and listings. Every
// bulk action only touches rows not already in the target state and reports
// how many changed.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an AdminService.
func NewAdminService(gdb *gorm.DB) *AdminService {
	return &AdminService{db: gdb}
}

// SetContactStatus moves the selected contact messages to status.
func (s *AdminService) SetContactStatus(ids []uint, status string) (int64, error) {
	target := db.ContactStatus(strings.ToLower(strings.TrimSpace(status)))
	if !target.Valid() {
		return 0, ErrInvalidStatus
	}
	return db.UpdateByFilter(s.db, &db.ContactMessage{}, ids, "status", target)
}

// SetDonationStatus moves the selected donations to status.
func (s *AdminService) SetDonationStatus(ids []uint, status string) (int64, error) {
	target := db.DonationStatus(strings.ToLower(strings.TrimSpace(status)))
	if !target.Valid() {
		return 0, ErrInvalidStatus
	}
	return db.UpdateByFilter(s.db, &db.BloodDonation{}, ids, "status", target)
}

// SetSubscribersActive activates or deactivates subscribers.
func (s *AdminService) SetSubscribersActive(ids []uint, active bool) (int64, error) {
	return db.UpdateByFilter(s.db, &db.NewsletterSubscriber{}, ids, "is_active", active)
}

// SetNewsPublished publishes or unpublishes articles.
func (s *AdminService) SetNewsPublished(ids []uint, published bool) (int64, error) {
	return db.UpdateByFilter(s.db, &db.NewsArticle{}, ids, "is_published", published)
}

// SetActive toggles the active flag of a content kind such as "events" or
// "faqs".
func (s *AdminService) SetActive(kind string, ids []uint, active bool) (int64, error) {
	model, ok := activeModels[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return 0, ErrUnknownKind
	}
	return db.UpdateByFilter(s.db, model(), ids, "is_active", active)
}

// ListContacts returns contact messages, newest first.
func (s *AdminService) ListContacts(filter SubmissionFilter) (Page[db.ContactMessage], error) {
	query := s.db.Model(&db.ContactMessage{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", like, like, like)
	}
	return paginate[db.ContactMessage](query, filter.Page, filter.PerPage, "created_at desc", "id desc")
}

// ListSubscribers returns subscribers, most recent first.
func (s *AdminService) ListSubscribers(filter SubmissionFilter) (Page[db.NewsletterSubscriber], error) {
	query := s.db.Model(&db.NewsletterSubscriber{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("email LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return paginate[db.NewsletterSubscriber](query, filter.Page, filter.PerPage, "subscribed_at desc", "id desc")
}

// ListRegistrations returns event registrations, most recent first.
func (s *AdminService) ListRegistrations(filter SubmissionFilter) (Page[db.EventRegistration], error) {
	query := s.db.Model(&db.EventRegistration{})
	if eventID := strings.TrimSpace(filter.EventID); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	return paginate[db.EventRegistration](query, filter.Page, filter.PerPage, "registered_at desc", "id desc")
}

// ListDonations returns donor registrations, most recent first.
func (s *AdminService) ListDonations(filter SubmissionFilter) (Page[db.BloodDonation], error) {
	query := s.db.Model(&db.BloodDonation{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if bloodType := strings.ToUpper(strings.TrimSpace(filter.BloodType)); bloodType != "" {
		query = query.Where("blood_type = ?", bloodType)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	return paginate[db.BloodDonation](query, filter.Page, filter.PerPage, "registered_at desc", "id desc")
}

func paginate[T any](query *gorm.DB, page, perPage int, orders ...string) (Page[T], error) {
	result := Page[T]{
		Page:    normalizePage(page),
		PerPage: normalizePerPage(perPage, defaultPerPage),
		Items:   []T{},
	}

	if err := query.Session(&gorm.Session{}).Count(&result.Total).Error; err != nil {
		return result, err
	}
	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)

	for _, order := range orders {
		query = query.Order(order)
	}
	offset := (result.Page - 1) * result.PerPage
	if err := query.Limit(result.PerPage).Offset(offset).Find(&result.Items).Error; err != nil {
		return result, err
	}
	return result, nil
}
