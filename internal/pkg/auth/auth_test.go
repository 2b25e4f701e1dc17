package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordManager(t *testing.T) {
	p := NewPasswordManager(bcrypt.MinCost)

	if _, err := p.HashPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	hash, err := p.HashPassword("demo123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := p.VerifyPassword("demo123", hash); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := p.VerifyPassword("demo124", hash); err == nil {
		t.Fatalf("expected mismatch")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWTManager("0123456789abcdef0123456789abcdef", "Petalline", time.Hour)

	token, err := j.GenerateAccessToken("demo", "demo@petalline.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := j.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "demo" || claims.Email != "demo@petalline.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	other := NewJWTManager("another-secret-another-secret-1234", "Petalline", time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected signature failure")
	}
}

func TestJWTExpired(t *testing.T) {
	j := NewJWTManager("0123456789abcdef0123456789abcdef", "Petalline", time.Minute)
	j.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := j.GenerateAccessToken("demo", "demo@petalline.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := j.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	if ExtractTokenFromHeader("Bearer abc") != "abc" || ExtractTokenFromHeader("Basic abc") != "" {
		t.Fatalf("unexpected extraction")
	}
}
