// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// The system currently grants a single fixed role to every user.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleUser
}

// Capability is a single action a principal is allowed to perform.
// Authorization is expressed as a capability set rather than a bare role
// string so that new roles can be added without reworking the checks.
type Capability string

const (
	// CapabilityManageEntries allows creating, updating and deleting own entries.
	CapabilityManageEntries Capability = "entries:manage"
	// CapabilityReadBalance allows reading the running balance.
	CapabilityReadBalance Capability = "balance:read"
)

// Capabilities is a set of capabilities granted to a principal.
type Capabilities []Capability

// Contains checks if the set grants a specific capability.
func (cs Capabilities) Contains(c Capability) bool {
	return slices.Contains(cs, c)
}

// CapabilitiesFor returns the capability set granted by a role.
func CapabilitiesFor(r Role) Capabilities {
	switch r {
	case RoleUser:
		return Capabilities{CapabilityManageEntries, CapabilityReadBalance}
	default:
		return nil
	}
}
