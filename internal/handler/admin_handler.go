package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/service"
	"github.com/studentorg/internal/view"
	"gorm.io/gorm"
)

const (
	sessionUserKey = "user_id"
	sessionNameKey = "username"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type statusRequest struct {
	IDs    []uint `json:"ids"`
	Status string `json:"status"`
}

type activeRequest struct {
	IDs    []uint `json:"ids"`
	Active *bool  `json:"active"`
}

type publishRequest struct {
	IDs       []uint `json:"ids"`
	Published *bool  `json:"published"`
}

// Login checks the credentials against the bcrypt hash and starts a session.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := db.Authenticate(a.db, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.requestLogger(c).Warn("admin login rejected", logger.String("username", req.Username), logger.Err(err))
		}
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	session.Set(sessionNameKey, user.Username)
	if err := session.Save(); err != nil {
		a.respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PutSiteSettings creates or overwrites the settings singleton.
func (a *API) PutSiteSettings(c *gin.Context) {
	var input service.SiteSettingsInput
	if !bindJSON(c, &input) {
		return
	}
	settings, err := a.site.SaveSettings(input)
	if err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": view.NewSiteSettings(*settings)})
}

// PutAbout creates or overwrites the about section.
func (a *API) PutAbout(c *gin.Context) {
	var input service.AboutInput
	if !bindJSON(c, &input) {
		return
	}
	about, err := a.site.SaveAbout(input)
	if err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about": view.NewAboutSection(*about)})
}

// create binds In, runs fn and answers 201 with the record under key.
func create[In any, Out any](a *API, c *gin.Context, key string, fn func(In) (Out, error)) {
	var input In
	if !bindJSON(c, &input) {
		return
	}
	out, err := fn(input)
	if err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, key: out})
}

// CreateEvent adds an event.
func (a *API) CreateEvent(c *gin.Context) {
	create(a, c, "event", func(in service.EventInput) (view.Event, error) {
		e, err := a.events.Create(in)
		if err != nil {
			return view.Event{}, err
		}
		return view.NewEvent(*e), nil
	})
}

// CreateNews adds an article, deriving the slug when omitted.
func (a *API) CreateNews(c *gin.Context) {
	create(a, c, "article", func(in service.NewsInput) (view.NewsArticle, error) {
		n, err := a.news.Create(in)
		if err != nil {
			return view.NewsArticle{}, err
		}
		return view.NewNewsArticle(*n), nil
	})
}

// CreateHero adds a hero banner.
func (a *API) CreateHero(c *gin.Context) {
	create(a, c, "hero", func(in service.HeroInput) (view.HeroSection, error) {
		h, err := a.content.CreateHero(in)
		if err != nil {
			return view.HeroSection{}, err
		}
		return view.NewHeroSection(*h), nil
	})
}

// CreateService adds a service card.
func (a *API) CreateService(c *gin.Context) {
	create(a, c, "service", func(in service.ServiceInput) (view.Service, error) {
		s, err := a.content.CreateService(in)
		if err != nil {
			return view.Service{}, err
		}
		return view.NewService(*s), nil
	})
}

// CreateTeamMember adds a team member.
func (a *API) CreateTeamMember(c *gin.Context) {
	create(a, c, "member", func(in service.TeamMemberInput) (view.TeamMember, error) {
		m, err := a.content.CreateTeamMember(in)
		if err != nil {
			return view.TeamMember{}, err
		}
		return view.NewTeamMember(*m), nil
	})
}

// CreateTestimonial adds a testimonial.
func (a *API) CreateTestimonial(c *gin.Context) {
	create(a, c, "testimonial", func(in service.TestimonialInput) (view.Testimonial, error) {
		t, err := a.content.CreateTestimonial(in)
		if err != nil {
			return view.Testimonial{}, err
		}
		return view.NewTestimonial(*t), nil
	})
}

// CreateGallery adds a gallery image.
func (a *API) CreateGallery(c *gin.Context) {
	create(a, c, "image", func(in service.GalleryInput) (view.Gallery, error) {
		g, err := a.gallery.Create(in)
		if err != nil {
			return view.Gallery{}, err
		}
		return view.NewGallery(*g), nil
	})
}

// CreateFAQ adds a FAQ entry.
func (a *API) CreateFAQ(c *gin.Context) {
	create(a, c, "faq", func(in service.FAQInput) (view.FAQ, error) {
		f, err := a.content.CreateFAQ(in)
		if err != nil {
			return view.FAQ{}, err
		}
		return view.NewFAQ(*f), nil
	})
}

// UpdateContactStatus moves the selected messages to a new status.
func (a *API) UpdateContactStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	a.respondBulk(c, req.IDs, func() (int64, error) {
		return a.admin.SetContactStatus(req.IDs, req.Status)
	})
}

// UpdateDonationStatus moves the selected donations to a new status.
func (a *API) UpdateDonationStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	a.respondBulk(c, req.IDs, func() (int64, error) {
		return a.admin.SetDonationStatus(req.IDs, req.Status)
	})
}

// UpdateSubscribersActive activates or deactivates subscribers.
func (a *API) UpdateSubscribersActive(c *gin.Context) {
	var req activeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Active == nil {
		respondError(c, http.StatusBadRequest, "active is required")
		return
	}
	a.respondBulk(c, req.IDs, func() (int64, error) {
		return a.admin.SetSubscribersActive(req.IDs, *req.Active)
	})
}

// UpdateNewsPublished publishes or unpublishes articles.
func (a *API) UpdateNewsPublished(c *gin.Context) {
	var req publishRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Published == nil {
		respondError(c, http.StatusBadRequest, "published is required")
		return
	}
	a.respondBulk(c, req.IDs, func() (int64, error) {
		return a.admin.SetNewsPublished(req.IDs, *req.Published)
	})
}

// UpdateActive toggles the active flag of the content kind in the path.
func (a *API) UpdateActive(c *gin.Context) {
	var req activeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Active == nil {
		respondError(c, http.StatusBadRequest, "active is required")
		return
	}
	kind := c.Param("kind")
	a.respondBulk(c, req.IDs, func() (int64, error) {
		return a.admin.SetActive(kind, req.IDs, *req.Active)
	})
}

func (a *API) respondBulk(c *gin.Context, ids []uint, apply func() (int64, error)) {
	if len(ids) == 0 {
		respondError(c, http.StatusBadRequest, "ids must not be empty")
		return
	}

	updated, err := apply()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, service.ErrUnknownKind):
			respondError(c, http.StatusNotFound, "Unknown content type")
		default:
			a.respondInternal(c, err)
		}
		return
	}

	a.requestLogger(c).Info("bulk update applied",
		logger.String("path", c.Request.URL.Path),
		logger.Int("selected", len(ids)),
		logger.Int64("updated", updated),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func submissionFilter(c *gin.Context) service.SubmissionFilter {
	return service.SubmissionFilter{
		Status:    c.Query("status"),
		BloodType: c.Query("blood_type"),
		EventID:   c.Query("event_id"),
		Search:    c.Query("search"),
		Page:      queryInt(c, "page"),
		PerPage:   queryInt(c, "per_page"),
	}
}

func respondPage[T any, V any](c *gin.Context, key string, page service.Page[T], fn func(T) V) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		key:           view.Map(page.Items, fn),
		"total":       page.Total,
		"page":        page.Page,
		"per_page":    page.PerPage,
		"total_pages": page.TotalPages,
	})
}

// ListContacts lists contact messages, newest first.
func (a *API) ListContacts(c *gin.Context) {
	page, err := a.admin.ListContacts(submissionFilter(c))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	respondPage(c, "contacts", page, view.NewContactMessage)
}

// ListSubscribers lists newsletter subscribers.
func (a *API) ListSubscribers(c *gin.Context) {
	page, err := a.admin.ListSubscribers(submissionFilter(c))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	respondPage(c, "subscribers", page, view.NewNewsletterSubscriber)
}

// ListRegistrations lists event registrations.
func (a *API) ListRegistrations(c *gin.Context) {
	page, err := a.admin.ListRegistrations(submissionFilter(c))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	respondPage(c, "registrations", page, view.NewEventRegistration)
}

// ListDonations lists blood donation registrations.
func (a *API) ListDonations(c *gin.Context) {
	page, err := a.admin.ListDonations(submissionFilter(c))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	respondPage(c, "donations", page, view.NewBloodDonation)
}
