// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthenticateInput defines the data required for a user to authenticate.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AuthenticateOutput returns the session token after a successful authentication.
type AuthenticateOutput struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user after checking email uniqueness.
	// The password is stored only as a hash.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Authenticate verifies the credentials and issues a session token.
	// User-not-found and password-mismatch surface as the same failure.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
