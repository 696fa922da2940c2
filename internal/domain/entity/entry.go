// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies a financial entry as money coming in or going out.
type EntryType string

const (
	// EntryTypeIncome marks an entry that increases the user's balance.
	EntryTypeIncome EntryType = "income"
	// EntryTypeExpense marks an entry that decreases the user's balance.
	EntryTypeExpense EntryType = "expense"
)

// String returns the string representation of the EntryType.
func (t EntryType) String() string {
	return string(t)
}

// IsValid checks if the EntryType is a valid value.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeIncome, EntryTypeExpense:
		return true
	default:
		return false
	}
}

// EntryStatus represents the lifecycle state of a financial entry.
// Only confirmed entries count towards the user's balance.
type EntryStatus string

const (
	// EntryStatusPending is the initial state of every new entry.
	EntryStatusPending EntryStatus = "pending"
	// EntryStatusCancelled marks an entry that was voided by the user.
	EntryStatusCancelled EntryStatus = "cancelled"
	// EntryStatusConfirmed marks an entry that took effect and counts towards the balance.
	EntryStatusConfirmed EntryStatus = "confirmed"
)

// String returns the string representation of the EntryStatus.
func (s EntryStatus) String() string {
	return string(s)
}

// IsValid checks if the EntryStatus is a valid value.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusCancelled, EntryStatusConfirmed:
		return true
	default:
		return false
	}
}

// Entry is a single financial record owned by a user: an income or an
// expense for a given month and year.
type Entry struct {
	ID           uuid.UUID       // The unique identifier for the entry.
	Description  string          // Free-form description of the entry.
	Month        int             // Accounting month, 1 through 12.
	Year         int             // Four-digit accounting year.
	UserID       uuid.UUID       // The owning user.
	Amount       decimal.Decimal // Monetary amount. Always positive; the sign is carried by Type.
	Type         EntryType       // Income or expense.
	Status       EntryStatus     // Pending, cancelled or confirmed.
	RegisteredAt time.Time       // Date the entry was recorded.
	CreatedAt    time.Time       // Timestamp of when this record was created.
	UpdatedAt    time.Time       // Timestamp of the last modification to this record.
}

// EntryFilter is a query-by-example filter for listing entries.
// Zero-valued fields are ignored; UserID is always required.
type EntryFilter struct {
	Description string    // Case-insensitive substring match when non-empty.
	Month       int       // Exact match when non-zero.
	Year        int       // Exact match when non-zero.
	UserID      uuid.UUID // Owning user. Required.
}
