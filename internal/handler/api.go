package handler

import (
	"time"

	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/mailer"
	"github.com/studentorg/internal/service"
	"gorm.io/gorm"
)

// Version is reported by the API root.
const Version = "1.0"

// Options carries the environment-dependent settings of the handlers.
type Options struct {
	// Production hides storage error details from responses.
	Production bool
	// Platform is the hosting platform shown on the API root.
	Platform    string
	Logger      logger.Logger
	Mailer      mailer.Sender
	Composer    mailer.Composer
	MailTimeout time.Duration
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	site    *service.SiteService
	content *service.ContentService
	gallery *service.GalleryService
	events  *service.EventService
	news    *service.NewsService
	slider  *service.SliderService
	intake  *service.IntakeService
	stats   *service.StatsService
	admin   *service.AdminService
	log     logger.Logger
	opts    Options
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, opts Options) *API {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	if opts.Platform == "" {
		opts.Platform = "Local/Other"
	}

	return &API{
		db:      db,
		site:    service.NewSiteService(db),
		content: service.NewContentService(db),
		gallery: service.NewGalleryService(db),
		events:  service.NewEventService(db),
		news:    service.NewNewsService(db),
		slider:  service.NewSliderService(db),
		intake:  service.NewIntakeService(db, opts.Mailer, opts.Composer, log).WithTimeout(opts.MailTimeout),
		stats:   service.NewStatsService(db),
		admin:   service.NewAdminService(db),
		log:     log.WithComponent("http"),
		opts:    opts,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Production reports whether the API runs with production hardening.
func (a *API) Production() bool {
	return a.opts.Production
}
