// internal/domain/user/service.go
//
// DEMO ONLY: accounts live in process memory and vanish on restart. This is a
// stand-in for a real identity provider behind the Credentials interface.
package user

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/petalline/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// Credentials stores and checks accounts
type Credentials interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	Lookup(ctx context.Context, username string) (*User, error)
}

// DemoDirectory is an in-memory Credentials implementation
type DemoDirectory struct {
	passwords *auth.PasswordManager
	now       func() time.Time

	mu    sync.RWMutex
	users map[string]*User
}

// NewDemoDirectory creates an empty directory
func NewDemoDirectory(passwords *auth.PasswordManager) *DemoDirectory {
	return &DemoDirectory{
		passwords: passwords,
		now:       time.Now,
		users:     make(map[string]*User),
	}
}

// SeedDemoUsers adds the demo and admin accounts when the directory is empty
func (d *DemoDirectory) SeedDemoUsers(ctx context.Context) error {
	d.mu.RLock()
	empty := len(d.users) == 0
	d.mu.RUnlock()
	if !empty {
		return nil
	}

	seeds := []RegisterRequest{
		{FullName: "Demo User", Username: "demo", Email: "demo@petalline.com", Password: "demo123"},
		{FullName: "Admin User", Username: "admin", Email: "admin@petalline.com", Password: "admin123"},
	}
	for i := range seeds {
		seeds[i].ConfirmPassword = seeds[i].Password
		seeds[i].AgreeTerms = true
		if _, err := d.Register(ctx, &seeds[i]); err != nil {
			return fmt.Errorf("failed to seed %s: %w", seeds[i].Username, err)
		}
	}
	return nil
}

// Register validates and stores a new account
func (d *DemoDirectory) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	fullName := strings.TrimSpace(req.FullName)
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if fullName == "" || username == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := d.passwords.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if !req.AgreeTerms {
		return nil, ErrTermsRequired
	}

	hash, err := d.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[username]; ok {
		return nil, ErrUsernameTaken
	}
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	u := &User{
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		RegisteredAt: d.now().UTC(),
	}
	d.users[username] = u

	copied := *u
	return &copied, nil
}

// Authenticate checks a username and password
func (d *DemoDirectory) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := d.Lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := d.passwords.VerifyPassword(password, u.PasswordHash); err != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}

// Lookup returns a copy of an account
func (d *DemoDirectory) Lookup(ctx context.Context, username string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// Count returns the number of registered accounts
func (d *DemoDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// Service handles sign-up and sign-in
type Service struct {
	credentials Credentials
	jwtManager  *auth.JWTManager
	logger      logrus.FieldLogger
}

// NewService creates a new user service
func NewService(credentials Credentials, jwtManager *auth.JWTManager, logger logrus.FieldLogger) *Service {
	return &Service{
		credentials: credentials,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Register creates a new account; the visitor signs in separately
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	u, err := s.credentials.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"username": u.Username}).Info("Demo account registered")
	return u, nil
}

// Login authenticates and issues an access token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, err := s.credentials.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Warn("Demo sign-in rejected")
		return nil, err
	}

	token, err := s.jwtManager.GenerateAccessToken(u.Username, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        u,
		AccessToken: token,
		ExpiresIn:   int64(s.jwtManager.Expiry().Seconds()),
		Message:     fmt.Sprintf("Welcome back, %s! Login successful.", u.GetDisplayName()),
	}, nil
}

// Profile returns the account behind a validated token
func (s *Service) Profile(ctx context.Context, username string) (*User, error) {
	return s.credentials.Lookup(ctx, username)
}
