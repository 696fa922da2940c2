// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// IdentityUsecase reconstructs the authenticated principal for a request.
// It is invoked by the access gate after token validation; the token's
// validity already establishes the session's authenticity, so resolution
// only rehydrates identity and never re-verifies the password.
type IdentityUsecase interface {
	// Resolve loads the user matching the token subject and derives the
	// principal with its capability set. It fails when no user matches.
	Resolve(ctx context.Context, subject string) (*entity.Principal, error)
}
