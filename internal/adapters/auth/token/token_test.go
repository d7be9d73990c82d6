package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"pets-day-registration/internal/ports/auth"
)

func TestNew_RequiresSecret(t *testing.T) {
	if _, err := New("   ", 0); !errors.Is(err, ErrSecretRequired) {
		t.Fatalf("expected ErrSecretRequired, got %v", err)
	}
}

func TestManager_IssueVerify_Roundtrip(t *testing.T) {
	m, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	in := auth.Claims{UserID: "staff-1", Email: "carla@example.com", Role: auth.RoleStaff}
	signed, err := m.Issue(in)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(context.Background(), signed)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != in {
		t.Fatalf("claims mismatch: got %#v want %#v", got, in)
	}
	if !got.IsStaff() {
		t.Fatalf("expected staff claims")
	}
}

func TestManager_Issue_RequiresUserID(t *testing.T) {
	m, _ := New("test-secret", time.Hour)
	if _, err := m.Issue(auth.Claims{Role: auth.RoleStaff}); err == nil {
		t.Fatalf("expected error without user id")
	}
}

func TestManager_Verify_RejectsOtherSecret(t *testing.T) {
	m1, _ := New("secret-a", time.Hour)
	m2, _ := New("secret-b", time.Hour)

	signed, err := m1.Issue(auth.Claims{UserID: "staff-1", Role: auth.RoleStaff})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m2.Verify(context.Background(), signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_RejectsExpired(t *testing.T) {
	m, _ := New("test-secret", time.Hour)

	issuedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }
	signed, err := m.Issue(auth.Claims{UserID: "staff-1", Role: auth.RoleStaff})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// dentro del TTL verifica; pasado el TTL expira
	m.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := m.Verify(context.Background(), signed); err != nil {
		t.Fatalf("Verify within ttl: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := m.Verify(context.Background(), signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_Verify_RejectsGarbage(t *testing.T) {
	m, _ := New("test-secret", time.Hour)
	for _, tok := range []string{"", "   ", "not.a.jwt"} {
		if _, err := m.Verify(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
