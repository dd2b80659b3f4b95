package service

import (
	"testing"

	"github.com/studentorg/internal/db"
)

func TestGalleryCreateAppendsWhenOrderOmitted(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewGalleryService(gdb)

	first, err := svc.Create(GalleryInput{Title: "Pinned", Image: "a.jpg", Order: intPtr(5)})
	if err != nil {
		t.Fatalf("create pinned: %v", err)
	}
	if first.Order != 5 || !first.IsActive {
		t.Fatalf("unexpected pinned image %#v", first)
	}

	second, err := svc.Create(GalleryInput{Title: "Appended", Image: "b.jpg"})
	if err != nil {
		t.Fatalf("create appended: %v", err)
	}
	if second.Order != 6 {
		t.Fatalf("expected appended order 6, got %d", second.Order)
	}

	zero, err := svc.Create(GalleryInput{Title: "Front", Image: "c.jpg", Order: intPtr(0)})
	if err != nil {
		t.Fatalf("create front: %v", err)
	}
	if zero.Order != 0 {
		t.Fatalf("explicit zero order must be kept, got %d", zero.Order)
	}
}

func TestGalleryListActiveByCategory(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewGalleryService(gdb)

	inputs := []GalleryInput{
		{Title: "Cleanup", Image: "1.jpg", Category: "Community Service", Order: intPtr(2)},
		{Title: "Workshop", Image: "2.jpg", Category: "Events", Order: intPtr(1)},
		{Title: "Drive", Image: "3.jpg", Category: "Events", Order: intPtr(3)},
		{Title: "Hidden", Image: "4.jpg", Category: "Events", IsActive: boolPtr(false)},
	}
	for _, in := range inputs {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("create %s: %v", in.Title, err)
		}
	}

	all, err := svc.ListActive("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].Title != "Workshop" || all[1].Title != "Cleanup" {
		t.Fatalf("unexpected gallery order %#v", all)
	}

	events, err := svc.ListActive(" Events ")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 || events[0].Title != "Workshop" || events[1].Title != "Drive" {
		t.Fatalf("unexpected events gallery %#v", events)
	}

	campus, err := svc.ListActive("Campus")
	if err != nil || len(campus) != 0 {
		t.Fatalf("expected no campus images, got %#v %v", campus, err)
	}
}

func TestGalleryCreateValidation(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewGalleryService(gdb)

	_, err := svc.Create(GalleryInput{Title: "No image"})
	requireFieldError(t, err, "image")

	_, err = svc.Create(GalleryInput{Image: "x.jpg"})
	requireFieldError(t, err, "title")

	var count int64
	gdb.Model(&db.Gallery{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid input must not be stored, got %d rows", count)
	}
}
