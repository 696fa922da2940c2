// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEntryNotFound is a domain-specific error returned when an entry is not found.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository defines the standard operations for financial entry persistence.
type EntryRepository interface {
	// FindByID retrieves a single entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByFilter retrieves all entries matching the query-by-example filter,
	// newest first.
	FindByFilter(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error)

	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// Update modifies an existing entry.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmountByUser returns the total amount of a user's entries for the
	// given type and status. Returns zero when no entries match.
	SumAmountByUser(ctx context.Context, userID uuid.UUID, entryType entity.EntryType, status entity.EntryStatus) (decimal.Decimal, error)
}
