package service

import "errors"

var (
	ErrSettingsNotConfigured = errors.New("settings not configured")
	ErrAboutNotConfigured    = errors.New("about section not configured")
	ErrNewsNotFound          = errors.New("article not found")
	ErrEmailRequired         = errors.New("email is required")
	ErrAlreadySubscribed     = errors.New("email already subscribed")
	ErrInvalidStatus         = errors.New("status is invalid")
	ErrUnknownKind           = errors.New("content kind is not supported")
)
