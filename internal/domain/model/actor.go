// Package model defines the core data types and transition rules for the
// fixhire service: repair-intake jobs on one side, job postings with
// applications and interviews on the other.
package model

import "strings"

// Role represents an actor's application role. Roles are immutable once
// assigned and drive every authorization decision.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleAgency    Role = "agency"
	RoleApplicant Role = "applicant"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleAgency, RoleApplicant:
		return true
	default:
		return false
	}
}

// IsOwnerRole reports whether the role may own job postings.
func (r Role) IsOwnerRole() bool {
	return r == RoleEmployer || r == RoleAgency
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Actor is the authenticated principal attached to every request.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
