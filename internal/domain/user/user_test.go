package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petalline/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/crypto/bcrypt"
)

func newDirectory(t *testing.T) *DemoDirectory {
	t.Helper()
	d := NewDemoDirectory(auth.NewPasswordManager(bcrypt.MinCost))
	if err := d.SeedDemoUsers(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return d
}

func TestSeedDemoUsers(t *testing.T) {
	d := newDirectory(t)
	if d.Count() != 2 {
		t.Fatalf("expected 2 demo users, got %d", d.Count())
	}
	if err := d.SeedDemoUsers(context.Background()); err != nil || d.Count() != 2 {
		t.Fatalf("seeding twice should be a no-op")
	}
}

func TestRegisterRules(t *testing.T) {
	d := newDirectory(t)
	ctx := context.Background()

	base := func() *RegisterRequest {
		return &RegisterRequest{
			FullName:        "Rose Petal",
			Username:        "rose",
			Email:           "rose@example.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
			AgreeTerms:      true,
		}
	}

	cases := []struct {
		name string
		edit func(r *RegisterRequest)
		want error
	}{
		{"missing name", func(r *RegisterRequest) { r.FullName = " " }, ErrMissingFields},
		{"mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "secret2" }, ErrPasswordMismatch},
		{"short", func(r *RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, auth.ErrPasswordTooShort},
		{"terms", func(r *RegisterRequest) { r.AgreeTerms = false }, ErrTermsRequired},
		{"username taken", func(r *RegisterRequest) { r.Username = "demo" }, ErrUsernameTaken},
		{"email taken", func(r *RegisterRequest) { r.Email = "DEMO@petalline.com" }, ErrEmailTaken},
	}
	for _, tc := range cases {
		req := base()
		tc.edit(req)
		if _, err := d.Register(ctx, req); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	u, err := d.Register(ctx, base())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "secret1" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestServiceLogin(t *testing.T) {
	logger, hook := test.NewNullLogger()
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", "Petalline", time.Hour)
	svc := NewService(newDirectory(t), jwtManager, logger)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &LoginRequest{Username: "demo", Password: "demo123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Message != "Welcome back, Demo User! Login successful." || resp.ExpiresIn != 3600 {
		t.Fatalf("unexpected response %+v", resp)
	}
	claims, err := jwtManager.ValidateAccessToken(resp.AccessToken)
	if err != nil || claims.Username != "demo" {
		t.Fatalf("token should identify the user: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginRequest{Username: "demo", Password: "wrong1"}); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Username: "ghost", Password: "demo123"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Username: "", Password: ""}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "Demo sign-in rejected" {
		t.Fatalf("rejected sign-ins should be logged")
	}
}
