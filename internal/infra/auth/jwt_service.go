// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"jobportal/config"
	"jobportal/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte                 // Process-wide signing secret, loaded once at startup.
	method    *jwt.SigningMethodHMAC // Fixed symmetric signing algorithm.
	accessTTL time.Duration          // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// The secret and algorithm are immutable for the process lifetime; rotating
// the secret invalidates every outstanding token.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(cfg.SigningAlgorithm()).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, errors.Errorf("unsupported signing algorithm %q", cfg.SigningAlgorithm())
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		method:    method,
		accessTTL: cfg.AccessTokenTTL(),
	}, nil
}

// GenerateToken creates a signed access token for a given user and role using
// the configured time-to-live.
func (s *jwtService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	return s.GenerateTokenWithTTL(userID, role, s.accessTTL)
}

// GenerateTokenWithTTL creates a signed access token with an explicit time-to-live.
func (s *jwtService) GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// ValidateToken checks the validity of a token string. Expiry is compared
// against the current instant with no grace window; that strictness is a
// policy choice. Every failure collapses to service.ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// The declared algorithm must match the configured one exactly.
		// Rejects alg=none and cross-algorithm downgrade tokens.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, "token validation failed")
	}

	// The subject must identify an account. Tokens signed without one are
	// rejected like any other invalid token.
	if claims.UserID == uuid.Nil {
		subjectID, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			return nil, errors.Wrap(service.ErrInvalidToken, "token subject missing")
		}
		claims.UserID = subjectID
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
