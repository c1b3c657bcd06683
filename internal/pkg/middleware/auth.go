package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/rioatrato/transchoco/internal/pkg/jwt"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// Context keys populated by the auth middleware.
const (
	ContextUserID    = "user_id"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
	ContextRole      = "role"
)

// SessionChecker verifies that a token still maps to a live server-side
// session. Logout deletes the session record, revoking the token before its
// expiry.
type SessionChecker interface {
	SessionActive(ctx context.Context, userID int64, jti string) (bool, error)
}

// AuthMiddleware validates the bearer token and the backing session, then
// stores the caller's identity on the echo context.
func AuthMiddleware(cfg *models.Config, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			claims, err := jwtpkg.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), cfg.JWT.Secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if sessions != nil {
				active, err := sessions.SessionActive(c.Request().Context(), claims.UserID, claims.JTI)
				if err != nil || !active {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserName, claims.Name)
			c.Set(ContextUserEmail, claims.Email)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}

// RequireRole restricts a route group to the given roles. It must run after
// AuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if !allowed[role] {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id from the echo context.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(ContextUserID).(int64)
	return id
}

// Role returns the authenticated caller's role from the echo context.
func Role(c echo.Context) string {
	role, _ := c.Get(ContextRole).(string)
	return role
}

// IsAdmin reports whether the caller is an administrator.
func IsAdmin(c echo.Context) bool {
	return Role(c) == models.RoleAdmin
}
