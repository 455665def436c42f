package middleware

import (
	"strings"

	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the request context. Errors flow to the terminal error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks whether the authenticated
// caller holds one of the allowed roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing from context")
			}

			if !entity.Roles(allowed).Contains(entity.Role(roleVal)) {
				return domainerrors.ErrForbidden.WrapMessage("role " + roleVal + " is not allowed")
			}

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated caller's ID, or zero if the
// request was not authenticated.
func UserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get(ContextKeyUserID).(uint); ok {
		return id
	}

	return 0
}
