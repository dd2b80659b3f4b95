package db

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoDatabase is returned when an account operation runs before Init.
var ErrNoDatabase = errors.New("database not initialized")

// User is a staff account allowed to use the admin API. Password holds the
// bcrypt hash, never the plain text.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureUser provisions the bootstrap admin account. Blank credentials are
// ignored, and an existing username keeps its current password. created
// reports whether a row was inserted.
func EnsureUser(gdb *gorm.DB, username, password string) (created bool, err error) {
	username, password = strings.TrimSpace(username), strings.TrimSpace(password)
	if username == "" || password == "" {
		return false, nil
	}
	if gdb == nil {
		return false, ErrNoDatabase
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	res := gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&User{Username: username, Password: string(hash)})
	if res.Error != nil {
		return false, fmt.Errorf("create user %s: %w", username, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Authenticate returns the user whose bcrypt hash matches password.
func Authenticate(gdb *gorm.DB, username, password string) (*User, error) {
	if gdb == nil {
		return nil, ErrNoDatabase
	}
	var user User
	if err := gdb.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, err
	}
	return &user, nil
}
