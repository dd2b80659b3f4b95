package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/service"
)

const invalidDataMessage = "Invalid data provided"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondInternal logs err and answers 500. The error text is only exposed
// outside production.
func (a *API) respondInternal(c *gin.Context, err error) {
	a.requestLogger(c).Error("request failed", err, logger.String("path", c.FullPath()))

	body := gin.H{"success": false, "message": "Internal Server Error"}
	if !a.opts.Production {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// respondServiceError answers validation failures with their field map and
// everything else as an internal error.
func (a *API) respondServiceError(c *gin.Context, err error, message string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message, "errors": verr.Fields})
		return
	}
	a.respondInternal(c, err)
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": invalidDataMessage,
			"errors":  gin.H{"non_field_errors": "Malformed JSON body."},
		})
		return false
	}
	return true
}

func (a *API) requestLogger(c *gin.Context) logger.Logger {
	if id := c.GetString(requestIDKey); id != "" {
		return a.log.WithRequestID(id)
	}
	return a.log
}

// parseLimit reads an optional non-negative integer query parameter.
// present is false when the parameter is missing or blank.
func parseLimit(c *gin.Context, key string) (limit int, present bool, ok bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, true, false
	}
	return value, true, true
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return value
}
