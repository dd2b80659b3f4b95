package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/service"
	"github.com/studentorg/internal/view"
)

// GetEvents returns active events in calendar order.
func (a *API) GetEvents(c *gin.Context) {
	events, err := a.events.ListActive()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": view.Map(events, view.NewEvent)})
}

// GetNews returns published articles, optionally capped by ?limit.
func (a *API) GetNews(c *gin.Context) {
	limit, present, ok := parseLimit(c, "limit")
	if !ok {
		respondError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if !present {
		limit = service.NoLimit
	}

	articles, err := a.news.ListPublished(limit)
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "news": view.Map(articles, view.NewNewsArticle)})
}

// GetNewsDetail returns one published article by slug.
func (a *API) GetNewsDetail(c *gin.Context) {
	article, err := a.news.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			respondError(c, http.StatusNotFound, "Article not found")
			return
		}
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "article": view.NewNewsArticle(*article)})
}

// GetStats returns submission counters.
func (a *API) GetStats(c *gin.Context) {
	stats, err := a.stats.Collect()
	if err != nil {
		a.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
