package service

import (
	"ledger/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
//
// Validate returns the token's claims together with the validation result so
// that callers can never extract a subject from a token that did not pass
// validation.
type TokenService interface {
	// Issue creates a new signed session token for the given user. The token
	// subject is the user's email and it expires after the configured lifetime.
	Issue(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string. It fails
	// closed: any malformed, tampered or expired token yields an error and
	// nil claims, never a panic.
	Validate(tokenString string) (*Claims, error)
}
