package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studentorg/internal/db"
	"gorm.io/gorm"
)

const DefaultAuthor = "Admin"

// NewsInput describes a new article. A blank slug is derived from the title.
type NewsInput struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" validate:"max=255"`
	Image         string     `json:"image" validate:"required,max=500"`
	Excerpt       string     `json:"excerpt" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	Author        string     `json:"author" validate:"max=100"`
	PublishedDate *time.Time `json:"published_date"`
	IsPublished   *bool      `json:"is_published"`
	ShowInSlider  bool       `json:"show_in_slider"`
}

// NewsService reads and writes news articles.
type NewsService struct {
	db *gorm.DB
}

// NewNewsService creates a NewsService.
func NewNewsService(gdb *gorm.DB) *NewsService {
	return &NewsService{db: gdb}
}

// NoLimit asks ListPublished for every published article.
const NoLimit = -1

// ListPublished returns published articles, newest first, capped at limit.
// A limit of 0 yields an empty list; NoLimit disables the cap.
func (s *NewsService) ListPublished(limit int) ([]db.NewsArticle, error) {
	query := s.db.Where("is_published = ?", true).Order("published_date desc").Order("id desc")
	if limit >= 0 {
		query = query.Limit(limit)
	}

	var articles []db.NewsArticle
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetPublishedBySlug returns the published article with slug. Drafts are
// reported as ErrNewsNotFound, the same as a missing slug.
func (s *NewsService) GetPublishedBySlug(slug string) (*db.NewsArticle, error) {
	var article db.NewsArticle
	err := s.db.Where("slug = ? AND is_published = ?", strings.TrimSpace(slug), true).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create stores an article. An explicit slug must be free; a derived one is
// suffixed until it is.
func (s *NewsService) Create(input NewsInput) (*db.NewsArticle, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	published := time.Now()
	if input.PublishedDate != nil && !input.PublishedDate.IsZero() {
		published = *input.PublishedDate
	}

	article := db.NewsArticle{
		Title:         strings.TrimSpace(input.Title),
		Image:         strings.TrimSpace(input.Image),
		Excerpt:       strings.TrimSpace(input.Excerpt),
		Content:       input.Content,
		Author:        orDefault(input.Author, DefaultAuthor),
		PublishedDate: published,
		IsPublished:   boolOr(input.IsPublished, true),
		ShowInSlider:  input.ShowInSlider,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		explicit := generateSlug(input.Slug)
		if explicit != "" {
			article.Slug = explicit
		} else {
			base := generateSlug(article.Title)
			if base == "" {
				base = "article"
			}
			slug, err := uniqueSlug(tx, &db.NewsArticle{}, base)
			if err != nil {
				return err
			}
			article.Slug = slug
		}
		return tx.Create(&article).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldError("slug", "news article with this slug already exists.")
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return &article, nil
}
