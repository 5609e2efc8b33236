// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	"jobportal/internal/delivery/http/response"
	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	"jobportal/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for access token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the bearer token
// and resolves the live account behind it. Every failure path returns the
// same 401 body: a missing header, a bad signature, an expired token and a
// deleted account are indistinguishable to the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return m.reject(c)
		}

		// A valid signature is not enough; the subject must still exist.
		// Only a confirmed-missing account gets the uniform 401; a store
		// failure is an internal error, not an authentication verdict.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return m.reject(c)
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRole, user.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the authenticated account
// holds a specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok || role != requiredRole {
				return response.Forbidden(c,
					domainerrors.ErrForbidden.ErrorCode(),
					domainerrors.ErrForbidden.Message(),
				)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	return response.Unauthorized(c,
		domainerrors.ErrUnauthorized.ErrorCode(),
		domainerrors.ErrUnauthorized.Message(),
	)
}
