// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"jobportal/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for a login key.
// The application layer maps it to a uniform rejection before it reaches a
// caller, so the absence of an account is never observable from outside.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for credential persistence.
type CredentialRepository interface {
	// CreateCredential persists the hashed login secret for a user.
	// The store enforces email uniqueness atomically on insert.
	CreateCredential(ctx context.Context, cred *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its login email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
