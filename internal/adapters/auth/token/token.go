package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pets-day-registration/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretRequired = errors.New("token: secret required")
	ErrInvalidToken   = errors.New("token: invalid token")
)

const DefaultTTL = 12 * time.Hour

// Manager emite y verifica tokens HMAC de sesión de staff.
// Implementa auth.Issuer y auth.Verifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(c auth.Claims) (string, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return "", errors.New("token: user id required")
	}

	now := m.now()
	claims := sessionClaims{
		Email: c.Email,
		Role:  string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(ctx context.Context, tokenStr string) (auth.Claims, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(tokenStr, &parsed, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(parsed.Subject)
	if sub == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{
		UserID: sub,
		Email:  parsed.Email,
		Role:   auth.Role(parsed.Role),
	}, nil
}
