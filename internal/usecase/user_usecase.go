// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobportal/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token after a successful signup or signin.
type AuthOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// PlatformStats aggregates public account totals per role.
type PlatformStats struct {
	TotalUsers  int64
	Hirers      int64
	Applicants  int64
	Freelancers int64
}

// UserUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp registers a new account and immediately issues an access token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies a password against the stored credential and issues an
	// access token. Every rejection is indistinguishable to the caller.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// GetProfile returns the account behind an authenticated subject.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetPlatformStats returns public per-role account totals.
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}
