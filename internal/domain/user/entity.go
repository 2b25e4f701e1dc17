// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// Demo account errors. Messages are shown to the visitor as-is.
var (
	ErrMissingFields      = errors.New("please fill in all fields")
	ErrMissingCredentials = errors.New("please enter both username and password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsRequired      = errors.New("please agree to the terms and conditions")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("username not found, please sign up first")
	ErrWrongPassword      = errors.New("incorrect password, please try again")
)

// User is a demo account. PasswordHash never leaves the process.
type User struct {
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// GetDisplayName returns the full name, or the username when unset
func (u *User) GetDisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Username
}

// RegisterRequest represents sign-up data
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// LoginRequest represents sign-in data
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Message     string `json:"message"`
}
