package service

import (
	"strings"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

// GalleryService handles gallery images.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating a gallery image. A
// nil Order places the image after every existing one.
type GalleryInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	Image        string `json:"image" validate:"required,max=500"`
	Category     string `json:"category" validate:"max=100"`
	IsActive     *bool  `json:"is_active"`
	ShowInSlider bool   `json:"show_in_slider"`
	Order        *int   `json:"order"`
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListActive returns active images, optionally restricted to one category.
func (s *GalleryService) ListActive(category string) ([]db.Gallery, error) {
	query := s.db.Where("is_active = ?", true)
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []db.Gallery
	if err := query.Order("display_order asc").Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.Gallery, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var order int
	if input.Order != nil {
		order = *input.Order
	} else {
		next, err := s.nextDisplayOrder()
		if err != nil {
			return nil, err
		}
		order = next
	}

	item := db.Gallery{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Image:        strings.TrimSpace(input.Image),
		Category:     strings.TrimSpace(input.Category),
		IsActive:     boolOr(input.IsActive, true),
		ShowInSlider: input.ShowInSlider,
		Order:        order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GalleryService) nextDisplayOrder() (int, error) {
	var maxOrder int
	if err := s.db.Model(&db.Gallery{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}
