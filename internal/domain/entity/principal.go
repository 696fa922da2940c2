// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a single request.
// It is derived from a validated token plus a credential-store lookup,
// lives only for the duration of the request, and is never persisted.
type Principal struct {
	UserID       uuid.UUID    // Resolved user identifier.
	Email        string       // Login identifier, equal to the token subject.
	Name         string       // Display name of the resolved user.
	Role         Role         // The fixed role granted to the principal.
	Capabilities Capabilities // Actions the principal is allowed to perform.
}

// Can reports whether the principal is allowed to perform the capability.
func (p *Principal) Can(c Capability) bool {
	return p != nil && p.Capabilities.Contains(c)
}
