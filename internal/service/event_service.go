package service

import (
	"strings"
	"time"

	"github.com/studentorg/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventInput describes a new event. Date is YYYY-MM-DD and times are hh:mm
// or hh:mm:ss.
type EventInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" validate:"required,clock"`
	EndTime      string `json:"end_time" validate:"required,clock"`
	Location     string `json:"location" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	Image        string `json:"image" validate:"max=500"`
	IsActive     *bool  `json:"is_active"`
	ShowInSlider bool   `json:"show_in_slider"`
}

// EventService lists and creates events.
type EventService struct {
	db *gorm.DB
}

// NewEventService creates an EventService.
func NewEventService(gdb *gorm.DB) *EventService {
	return &EventService{db: gdb}
}

// ListActive returns active events in calendar order.
func (s *EventService) ListActive() ([]db.Event, error) {
	var events []db.Event
	if err := s.db.Where("is_active = ?", true).
		Order("date asc").Order("start_time asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Create validates input and stores the event.
func (s *EventService) Create(input EventInput) (*db.Event, error) {
	input.Date = strings.TrimSpace(input.Date)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fieldError("date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	start, _ := parseClock(input.StartTime)
	end, _ := parseClock(input.EndTime)

	event := db.Event{
		Title:        strings.TrimSpace(input.Title),
		Date:         datatypes.Date(day),
		StartTime:    clockOf(start),
		EndTime:      clockOf(end),
		Location:     strings.TrimSpace(input.Location),
		Description:  strings.TrimSpace(input.Description),
		Image:        strings.TrimSpace(input.Image),
		IsActive:     boolOr(input.IsActive, true),
		ShowInSlider: input.ShowInSlider,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func clockOf(t time.Time) datatypes.Time {
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}
