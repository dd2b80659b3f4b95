package view

import (
	"time"

	"github.com/studentorg/internal/db"
)

// ContactMessage is the wire form of db.ContactMessage.
type ContactMessage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsletterSubscriber is the wire form of db.NewsletterSubscriber.
type NewsletterSubscriber struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
}

// EventRegistration is the wire form of db.EventRegistration.
type EventRegistration struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	EventID        string    `json:"event_id"`
	AdditionalInfo string    `json:"additional_info"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// BloodDonation is the wire form of db.BloodDonation.
type BloodDonation struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	BloodType         string    `json:"blood_type"`
	Age               int       `json:"age"`
	Address           string    `json:"address"`
	MedicalConditions string    `json:"medical_conditions"`
	Status            string    `json:"status"`
	RegisteredAt      time.Time `json:"registered_at"`
}

func NewContactMessage(m db.ContactMessage) ContactMessage {
	return ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func NewNewsletterSubscriber(s db.NewsletterSubscriber) NewsletterSubscriber {
	return NewsletterSubscriber{
		ID:           s.ID,
		Email:        s.Email,
		SubscribedAt: s.SubscribedAt,
		IsActive:     s.IsActive,
	}
}

func NewEventRegistration(r db.EventRegistration) EventRegistration {
	return EventRegistration{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		EventID:        r.EventID,
		AdditionalInfo: r.AdditionalInfo,
		RegisteredAt:   r.RegisteredAt,
	}
}

func NewBloodDonation(d db.BloodDonation) BloodDonation {
	return BloodDonation{
		ID:                d.ID,
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		BloodType:         string(d.BloodType),
		Age:               d.Age,
		Address:           d.Address,
		MedicalConditions: d.MedicalConditions,
		Status:            string(d.Status),
		RegisteredAt:      d.RegisteredAt,
	}
}
