package auth

import "context"

// Verifier verifica un token y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Issuer emite un token firmado para unos claims.
type Issuer interface {
	Issue(claims Claims) (string, error)
}
