package db

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscriber is a unique, normalized email address on the mailing list.
type NewsletterSubscriber struct {
	gorm.Model
	Email        string    `gorm:"size:254;uniqueIndex;not null"`
	SubscribedAt time.Time `gorm:"index"`
	IsActive     bool
}
