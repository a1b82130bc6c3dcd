package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "dev@example.com", "FREELANCER")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != userID || claims.Role != "FREELANCER" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh")
	}
}

func TestHMACService_RefreshToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token")
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "COMPANY")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_ForeignSecret(t *testing.T) {
	issuer := NewHMACService("other-access", "other-refresh", time.Minute, time.Hour)
	tok, err := issuer.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
