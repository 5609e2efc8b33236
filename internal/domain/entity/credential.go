package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Constructor-level validation errors for entities.
var (
	ErrInvalidRole = errors.New("role must be one of hirer, applicant, freelancer")
	ErrEmptyEmail  = errors.New("email must not be empty")
)

// Credential is the stored secret side of an account: the email login key and
// the bcrypt hash of the password. It is never serialized outward and the
// hash is never logged; only the persistence layer and the credential service
// touch it.
type Credential struct {
	UserID       uuid.UUID // Links this credential to the User it authenticates.
	Email        string    // The login identifier, unique across the platform.
	PasswordHash string    // Self-describing adaptive hash (algorithm, cost and salt embedded).
	CreatedAt    time.Time // Timestamp of when this credential was created.
}
