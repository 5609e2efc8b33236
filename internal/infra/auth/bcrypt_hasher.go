// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"jobportal/config"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/service"
)

// bcrypt refuses input beyond 72 bytes; anything longer is rejected up front
// so the limit surfaces as a validation error instead of a hashing error.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher, reading the cost
// factor and acceptance limits from configuration. It returns the
// implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	minLength := 1
	maxLength := bcryptMaxPasswordBytes
	if cfg != nil && cfg.PasswordPolicy != nil {
		if cfg.PasswordPolicy.MinLength > minLength {
			minLength = cfg.PasswordPolicy.MinLength
		}
		if cfg.PasswordPolicy.MaxLength > 0 && cfg.PasswordPolicy.MaxLength < maxLength {
			maxLength = cfg.PasswordPolicy.MaxLength
		}
	}

	return &bcryptHasher{cost: cost, minLength: minLength, maxLength: maxLength}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor and
// default acceptance limits. Used by tests to keep hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, minLength: 1, maxLength: bcryptMaxPasswordBytes}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt embeds a fresh random salt, so repeated calls with the same input
// produce different hashes.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePassword(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt generate failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash. The comparison is
// constant-time inside bcrypt. A malformed hash reports false, not an error,
// so callers cannot distinguish "bad hash format" from "wrong password".
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword applies the acceptance policy before any hashing work.
func (h *bcryptHasher) ValidatePassword(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password must not be empty")
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password exceeds maximum length")
	}

	return nil
}
