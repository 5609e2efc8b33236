// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal of the platform: the identity resolved
// for a request, distinct from any raw token or stored credential. It never
// carries secret material.
type User struct {
	ID        uuid.UUID // The globally unique identifier for the account.
	Email     string    // The primary contact email, also the login identifier.
	Name      string    // The display name.
	Role      Role      // Exactly one of hirer, applicant, freelancer.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// NewUser constructs a User with the invariants enforced: a recognized role
// and a non-empty email. The ID is assigned by the store on insert.
func NewUser(name, email string, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	return &User{
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}
