package view

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/studentorg/internal/db"
	"gorm.io/datatypes"
)

func TestNewEventFormatsDateAndTimes(t *testing.T) {
	e := db.Event{
		Title:     "Blood Drive",
		Date:      datatypes.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		StartTime: datatypes.NewTime(9, 30, 0, 0),
		EndTime:   datatypes.NewTime(16, 0, 0, 0),
		Location:  "Student Center",
		IsActive:  true,
	}
	e.ID = 3

	got := NewEvent(e)
	if got.Date != "2026-03-14" {
		t.Fatalf("unexpected date %q", got.Date)
	}
	if got.StartTime != "09:30:00" || got.EndTime != "16:00:00" {
		t.Fatalf("unexpected times %q - %q", got.StartTime, got.EndTime)
	}
}

func TestContactMessageWireFieldNames(t *testing.T) {
	msg := db.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello", Status: db.ContactStatusNew}
	raw, err := json.Marshal(NewContactMessage(msg))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, key := range []string{`"status":"new"`, `"created_at"`, `"message":"Hello"`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
	if strings.Contains(body, "DeletedAt") {
		t.Fatalf("gorm bookkeeping must not leak: %s", body)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	faqs := []db.FAQ{{Question: "one"}, {Question: "two"}}
	got := Map(faqs, NewFAQ)
	if len(got) != 2 || got[0].Question != "one" || got[1].Question != "two" {
		t.Fatalf("unexpected mapping %#v", got)
	}
	if empty := Map([]db.FAQ(nil), NewFAQ); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
