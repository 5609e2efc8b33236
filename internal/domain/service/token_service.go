package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single outcome for every token validation failure:
// bad signature, wrong algorithm, missing subject, expiry, malformed
// encoding. Callers are never told which one occurred.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating bearer
// tokens. This abstracts the details of token creation from the use cases.
// Validity is purely a function of signature and current time; the server
// keeps no token state.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user and role,
	// expiring after the configured time-to-live.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// GenerateTokenWithTTL creates a signed access token with an explicit
	// time-to-live, overriding the configured default.
	GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string: signature,
	// declared algorithm, expiry and subject. Every failure collapses to
	// ErrInvalidToken so callers cannot distinguish why a token failed.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime for access tokens.
	GetAccessTokenDuration() time.Duration
}
