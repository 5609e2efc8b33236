package auth

import (
	"strings"
	"testing"
	"time"

	"jobportal/config"
	"jobportal/internal/domain/entity"
	"jobportal/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleHirer.String())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, entity.RoleHirer.String(), claims.Role)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	// Zero TTL means exp is not strictly in the future.
	token, err := jwtService.GenerateTokenWithTTL(userID, entity.RoleApplicant.String(), 0)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	// Already-past expiry is rejected the same way.
	token, err = jwtService.GenerateTokenWithTTL(userID, entity.RoleApplicant.String(), -time.Minute)
	require.NoError(t, err)

	claims, err = jwtService.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_TamperedSignatureRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleFreelancer.String())
	require.NoError(t, err)

	// Flip the last signature character while keeping the claims intact.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	claims, err := jwtService.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_MalformedTokenRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	for _, tokenString := range []string{"", "clearly-not-a-jwt", "a.b.c"} {
		claims, err := jwtService.ValidateToken(tokenString)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrInvalidToken))
	}
}

func TestJWTService_AlgorithmMismatchRejected(t *testing.T) {
	cfg := newTestJWTConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	now := time.Now()
	registered := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	// Same secret, different HMAC variant: declared alg must match exactly.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, registered).
		SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(hs512)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	// Unsigned alg=none tokens are rejected outright.
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, registered).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err = jwtService.ValidateToken(none)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_MissingSubjectRejected(t *testing.T) {
	cfg := newTestJWTConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// A well-signed token without a subject claim is still invalid.
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(anonymous)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_MissingExpiryRejected(t *testing.T) {
	cfg := newTestJWTConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	eternal, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
	}).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(eternal)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_UnsupportedAlgorithm(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{Algorithm: "RS256"}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())

	// Without configuration, the platform default of 30 minutes applies.
	jwtService, err = NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, jwtService.GetAccessTokenDuration())
}
