// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity and credential record of the system.
// The password is stored only as a bcrypt hash, never in plaintext.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned at creation.
	Email        string    // The user's login identifier. Unique across all users.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt hash of the user's password credential.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
