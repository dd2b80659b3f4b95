package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/service"
	"github.com/studentorg/internal/view"
)

// GetSiteSettings returns the settings singleton.
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.site.GetSettings()
	if err != nil {
		if errors.Is(err, service.ErrSettingsNotConfigured) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Settings not configured"})
			return
		}
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": view.NewSiteSettings(*settings)})
}

// GetAbout returns the about section singleton.
func (a *API) GetAbout(c *gin.Context) {
	about, err := a.site.GetAbout()
	if err != nil {
		if errors.Is(err, service.ErrAboutNotConfigured) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "About section not configured"})
			return
		}
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about": view.NewAboutSection(*about)})
}

// GetHeroSections returns active hero banners.
func (a *API) GetHeroSections(c *gin.Context) {
	heroes, err := a.content.ListHeroes()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "heroes": view.Map(heroes, view.NewHeroSection)})
}

// GetServices returns active service cards.
func (a *API) GetServices(c *gin.Context) {
	services, err := a.content.ListServices()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": view.Map(services, view.NewService)})
}

// GetTeam returns active team members.
func (a *API) GetTeam(c *gin.Context) {
	team, err := a.content.ListTeam()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "team": view.Map(team, view.NewTeamMember)})
}

// GetTestimonials returns active testimonials.
func (a *API) GetTestimonials(c *gin.Context) {
	items, err := a.content.ListTestimonials()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": view.Map(items, view.NewTestimonial)})
}

// GetGallery returns active gallery images, filtered by ?category.
func (a *API) GetGallery(c *gin.Context) {
	items, err := a.gallery.ListActive(c.Query("category"))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "gallery": view.Map(items, view.NewGallery)})
}

// GetFAQs returns active FAQs, filtered by ?category.
func (a *API) GetFAQs(c *gin.Context) {
	faqs, err := a.content.ListFAQs(c.Query("category"))
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "faqs": view.Map(faqs, view.NewFAQ)})
}

// GetSliderContent returns the merged homepage slider feed.
func (a *API) GetSliderContent(c *gin.Context) {
	slides, err := a.slider.Slides()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(slides), "slides": slides})
}
