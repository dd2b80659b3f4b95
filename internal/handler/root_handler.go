package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/db"
)

// APIRoot lists the public endpoints and describes the runtime.
func (a *API) APIRoot(c *gin.Context) {
	backend := db.DescribeBackend(a.db)

	var warning interface{}
	if a.opts.Platform == "Vercel" && backend.Type == "SQLite" {
		warning = "Using SQLite on Vercel - data will be lost!"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student Organization API",
		"version": Version,
		"database": gin.H{
			"type":        backend.Type,
			"engine":      backend.Engine,
			"environment": a.opts.Platform,
			"warning":     warning,
		},
		"endpoints": gin.H{
			"site_content": gin.H{
				"site_settings":  "/api/site-settings",
				"hero_sections":  "/api/hero-sections",
				"slider_content": "/api/slider-content",
				"about":          "/api/about",
				"services":       "/api/services",
				"team":           "/api/team",
				"testimonials":   "/api/testimonials",
				"gallery":        "/api/gallery",
				"faqs":           "/api/faqs",
			},
			"content": gin.H{
				"events":      "/api/events",
				"news":        "/api/news",
				"news_detail": "/api/news/<slug>",
			},
			"forms": gin.H{
				"contact":        "/api/contact (POST)",
				"subscribe":      "/api/subscribe (POST)",
				"register_event": "/api/register-event (POST)",
				"donate_blood":   "/api/donate-blood (POST)",
			},
			"stats": "/api/stats",
		},
	})
}

// Health pings the database.
func (a *API) Health(c *gin.Context) {
	if a.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not initialized"})
		return
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
