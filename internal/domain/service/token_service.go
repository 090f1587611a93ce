package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates bearer tokens issued by the external auth service.
// Issuance is not part of this system; the middleware only needs to verify
// signatures and extract claims.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
