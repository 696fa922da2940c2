// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// EntryInput defines the data required to create or update a financial entry.
type EntryInput struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	UserID      uuid.UUID       `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status,omitempty"`
}

// EntryUsecase defines the interface for financial-entry business operations.
type EntryUsecase interface {
	// Create validates and persists a new entry. The status of a new entry
	// is always pending, regardless of client input.
	Create(ctx context.Context, input *EntryInput) (*entity.Entry, error)

	// Update re-validates and modifies an existing entry.
	Update(ctx context.Context, id uuid.UUID, input *EntryInput) (*entity.Entry, error)

	// UpdateStatus moves an existing entry to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Entry, error)

	// Delete removes an existing entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID retrieves an entry by its unique ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// Search lists entries matching the query-by-example filter.
	Search(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error)

	// BalanceByUser computes the user's running balance: the sum of confirmed
	// income minus the sum of confirmed expenses.
	BalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
