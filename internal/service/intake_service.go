package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/mailer"
	"github.com/studentorg/internal/metrics"
	"gorm.io/gorm"
)

const defaultNotifyTimeout = 10 * time.Second

// Submission kinds, used for logs and metrics.
const (
	KindContact      = "contact"
	KindSubscribe    = "subscribe"
	KindRegistration = "register_event"
	KindDonation     = "donate_blood"
)

// ContactInput is the public contact form.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// SubscribeInput is the newsletter signup form.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// RegistrationInput is the event registration form. EventID is free text.
type RegistrationInput struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Phone          string `json:"phone" validate:"required,max=20"`
	EventID        string `json:"event_id" validate:"required,max=255"`
	AdditionalInfo string `json:"additional_info"`
}

// DonationInput is the blood donation registration form.
type DonationInput struct {
	Name              string `json:"name" validate:"required,max=255"`
	Email             string `json:"email" validate:"required,email,max=254"`
	Phone             string `json:"phone" validate:"required,max=20"`
	BloodType         string `json:"blood_type" validate:"required,bloodtype"`
	Age               int    `json:"age" validate:"required,gte=1,lte=120"`
	Address           string `json:"address" validate:"required"`
	MedicalConditions string `json:"medical_conditions"`
}

// IntakeService persists public form submissions and then sends a
// best-effort notification. A failed notification is logged and counted but
// never returned to the caller.
type IntakeService struct {
	db       *gorm.DB
	sender   mailer.Sender
	composer mailer.Composer
	timeout  time.Duration
	log      logger.Logger
	now      func() time.Time
}

// NewIntakeService creates an IntakeService. A nil sender disables
// notifications.
func NewIntakeService(gdb *gorm.DB, sender mailer.Sender, composer mailer.Composer, log logger.Logger) *IntakeService {
	if log == nil {
		log = logger.Nop()
	}
	return &IntakeService{
		db:       gdb,
		sender:   sender,
		composer: composer,
		timeout:  defaultNotifyTimeout,
		log:      log.WithComponent("intake"),
		now:      time.Now,
	}
}

// WithTimeout bounds each notification send.
func (s *IntakeService) WithTimeout(d time.Duration) *IntakeService {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Contact stores a contact message and notifies the staff inbox.
func (s *IntakeService) Contact(ctx context.Context, input ContactInput) (*db.ContactMessage, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	if err := s.check(KindContact, validateStruct(input)); err != nil {
		return nil, err
	}

	msg := db.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  db.ContactStatusNew,
	}
	if err := s.persist(KindContact, &msg); err != nil {
		return nil, err
	}

	s.notify(ctx, KindContact, func() (mailer.Message, bool, error) {
		return s.composer.ContactNotification(msg)
	})
	return &msg, nil
}

// Subscribe adds email to the newsletter. Duplicates are rejected before the
// address is validated.
func (s *IntakeService) Subscribe(ctx context.Context, input SubscribeInput) (*db.NewsletterSubscriber, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		metrics.RecordSubmission(KindSubscribe, "invalid")
		return nil, ErrEmailRequired
	}

	var existing int64
	if err := s.db.Unscoped().Model(&db.NewsletterSubscriber{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		metrics.RecordSubmission(KindSubscribe, "error")
		return nil, fmt.Errorf("lookup subscriber: %w", err)
	}
	if existing > 0 {
		metrics.RecordSubmission(KindSubscribe, "duplicate")
		return nil, ErrAlreadySubscribed
	}

	if err := s.check(KindSubscribe, validateStruct(SubscribeInput{Email: email})); err != nil {
		return nil, err
	}

	subscriber := db.NewsletterSubscriber{
		Email:        email,
		SubscribedAt: s.now(),
		IsActive:     true,
	}
	if err := s.db.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.RecordSubmission(KindSubscribe, "duplicate")
			return nil, ErrAlreadySubscribed
		}
		metrics.RecordSubmission(KindSubscribe, "error")
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	metrics.RecordSubmission(KindSubscribe, "accepted")

	s.notify(ctx, KindSubscribe, func() (mailer.Message, bool, error) {
		m, err := s.composer.NewsletterWelcome(subscriber)
		return m, true, err
	})
	return &subscriber, nil
}

// RegisterEvent stores an event registration and confirms it to the attendee.
func (s *IntakeService) RegisterEvent(ctx context.Context, input RegistrationInput) (*db.EventRegistration, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.EventID = strings.TrimSpace(input.EventID)
	if err := s.check(KindRegistration, validateStruct(input)); err != nil {
		return nil, err
	}

	registration := db.EventRegistration{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		EventID:        input.EventID,
		AdditionalInfo: strings.TrimSpace(input.AdditionalInfo),
		RegisteredAt:   s.now(),
	}
	if err := s.persist(KindRegistration, &registration); err != nil {
		return nil, err
	}

	s.notify(ctx, KindRegistration, func() (mailer.Message, bool, error) {
		m, err := s.composer.RegistrationConfirmation(registration)
		return m, true, err
	})
	return &registration, nil
}

// DonateBlood stores a donor registration as pending and confirms it.
func (s *IntakeService) DonateBlood(ctx context.Context, input DonationInput) (*db.BloodDonation, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	input.Address = strings.TrimSpace(input.Address)
	if err := s.check(KindDonation, validateStruct(input)); err != nil {
		return nil, err
	}

	donation := db.BloodDonation{
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		BloodType:         db.BloodType(input.BloodType),
		Age:               input.Age,
		Address:           input.Address,
		MedicalConditions: strings.TrimSpace(input.MedicalConditions),
		Status:            db.DonationStatusPending,
		RegisteredAt:      s.now(),
	}
	if err := s.persist(KindDonation, &donation); err != nil {
		return nil, err
	}

	s.notify(ctx, KindDonation, func() (mailer.Message, bool, error) {
		m, err := s.composer.DonationConfirmation(donation)
		return m, true, err
	})
	return &donation, nil
}

func (s *IntakeService) check(kind string, err error) error {
	if err != nil {
		metrics.RecordSubmission(kind, "invalid")
	}
	return err
}

func (s *IntakeService) persist(kind string, record interface{}) error {
	if err := s.db.Create(record).Error; err != nil {
		metrics.RecordSubmission(kind, "error")
		return fmt.Errorf("store %s: %w", kind, err)
	}
	metrics.RecordSubmission(kind, "accepted")
	return nil
}

// notify runs after the record is committed. It detaches from the request
// cancellation so a client hanging up does not abort the send.
func (s *IntakeService) notify(ctx context.Context, kind string, compose func() (mailer.Message, bool, error)) {
	if s.sender == nil {
		return
	}

	msg, ok, err := compose()
	if err != nil {
		metrics.RecordNotification(kind, err)
		s.log.Error("failed to render notification", err, logger.Kind(kind))
		return
	}
	if !ok {
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	err = s.sender.Send(sendCtx, msg)
	metrics.RecordNotification(kind, err)
	if err != nil {
		s.log.Warn("notification not delivered",
			logger.Kind(kind),
			logger.Err(err),
			logger.Duration("elapsed_ms", time.Since(start)),
		)
		return
	}
	s.log.Debug("notification sent", logger.Kind(kind), logger.Duration("elapsed_ms", time.Since(start)))
}
