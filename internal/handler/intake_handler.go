package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/service"
)

// Contact accepts the public contact form.
func (a *API) Contact(c *gin.Context) {
	var input service.ContactInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := a.intake.Contact(c.Request.Context(), input); err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully! We will get back to you soon.",
	})
}

// Subscribe adds an address to the newsletter.
func (a *API) Subscribe(c *gin.Context) {
	var input service.SubscribeInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := a.intake.Subscribe(c.Request.Context(), input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			respondError(c, http.StatusBadRequest, "Email is required")
		case errors.Is(err, service.ErrAlreadySubscribed):
			respondError(c, http.StatusBadRequest, "This email is already subscribed to our newsletter")
		default:
			a.respondServiceError(c, err, "Invalid email address")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Successfully subscribed to newsletter!",
	})
}

// RegisterEvent accepts an event registration.
func (a *API) RegisterEvent(c *gin.Context) {
	var input service.RegistrationInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := a.intake.RegisterEvent(c.Request.Context(), input); err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Successfully registered for the event!",
	})
}

// DonateBlood accepts a blood donation registration.
func (a *API) DonateBlood(c *gin.Context) {
	var input service.DonationInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := a.intake.DonateBlood(c.Request.Context(), input); err != nil {
		a.respondServiceError(c, err, invalidDataMessage)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Successfully registered for blood donation!",
	})
}
