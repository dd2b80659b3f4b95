package service

import (
	"fmt"
	"sort"

	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/view"
	"gorm.io/gorm"
)

// FallbackSlideOrder ranks every non-hero slide after explicitly ordered
// heroes.
// TODO: move the fallback order into site settings once admins can rank promoted items.
const FallbackSlideOrder = 10

const subtitleLimit = 100

// Slide types.
const (
	SlideHero    = "hero"
	SlideEvent   = "event"
	SlideNews    = "news"
	SlideGallery = "gallery"
)

// Slide is the common envelope of every slider item.
type Slide struct {
	Type     string `json:"type"`
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	CTAText  string `json:"cta_text"`
	Order    int    `json:"order"`
}

// SliderService builds the homepage slider feed.
type SliderService struct {
	db *gorm.DB
}

// NewSliderService creates a SliderService.
func NewSliderService(gdb *gorm.DB) *SliderService {
	return &SliderService{db: gdb}
}

// Slides gathers heroes, events, news and gallery images in that order and
// stable-sorts them by Order, so equal orders keep the gathering order.
func (s *SliderService) Slides() ([]Slide, error) {
	var heroes []db.HeroSection
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("id asc").
		Find(&heroes).Error; err != nil {
		return nil, fmt.Errorf("load heroes: %w", err)
	}

	var events []db.Event
	if err := s.db.Where("is_active = ? AND show_in_slider = ?", true, true).
		Order("date asc").Order("start_time asc").Order("id asc").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	var news []db.NewsArticle
	if err := s.db.Where("is_published = ? AND show_in_slider = ?", true, true).
		Order("published_date desc").Order("id desc").
		Find(&news).Error; err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}

	var gallery []db.Gallery
	if err := s.db.Where("is_active = ? AND show_in_slider = ?", true, true).
		Order("created_at desc").Order("id desc").
		Find(&gallery).Error; err != nil {
		return nil, fmt.Errorf("load gallery: %w", err)
	}

	return MergeSlides(heroes, events, news, gallery), nil
}

// MergeSlides converts the four already-ordered sources and ranks them.
func MergeSlides(heroes []db.HeroSection, events []db.Event, news []db.NewsArticle, gallery []db.Gallery) []Slide {
	slides := make([]Slide, 0, len(heroes)+len(events)+len(news)+len(gallery))
	slides = append(slides, view.Map(heroes, heroSlide)...)
	slides = append(slides, view.Map(events, eventSlide)...)
	slides = append(slides, view.Map(news, newsSlide)...)
	slides = append(slides, view.Map(gallery, gallerySlide)...)

	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].Order < slides[j].Order
	})
	return slides
}

// heroSlide links a hero banner to its call-to-action.
func heroSlide(h db.HeroSection) Slide {
	return Slide{
		Type:     SlideHero,
		ID:       h.ID,
		Title:    h.Title,
		Subtitle: h.Subtitle,
		Image:    h.BackgroundImage,
		Link:     h.CTALink,
		CTAText:  h.CTAText,
		Order:    h.Order,
	}
}

// eventSlide links to the event listing.
func eventSlide(e db.Event) Slide {
	return Slide{
		Type:     SlideEvent,
		ID:       e.ID,
		Title:    e.Title,
		Subtitle: fmt.Sprintf("Event: %s at %s", view.FormatDate(e), e.Location),
		Image:    e.Image,
		Link:     "#events",
		CTAText:  "View Event",
		Order:    FallbackSlideOrder,
	}
}

// newsSlide links to the article detail page.
func newsSlide(n db.NewsArticle) Slide {
	return Slide{
		Type:     SlideNews,
		ID:       n.ID,
		Title:    n.Title,
		Subtitle: truncate(n.Excerpt, subtitleLimit) + "...",
		Image:    n.Image,
		Link:     "#news-" + n.Slug,
		CTAText:  "Read Article",
		Order:    FallbackSlideOrder,
	}
}

// gallerySlide links to the gallery section.
func gallerySlide(g db.Gallery) Slide {
	return Slide{
		Type:     SlideGallery,
		ID:       g.ID,
		Title:    g.Title,
		Subtitle: truncate(g.Description, subtitleLimit),
		Image:    g.Image,
		Link:     "#gallery",
		CTAText:  "View Gallery",
		Order:    FallbackSlideOrder,
	}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
