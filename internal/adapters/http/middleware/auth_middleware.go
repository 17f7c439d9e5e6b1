package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/core/domain"
	"crewledger/internal/pkg/response"
)

// SessionResolver maps a bearer token to a user identity
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*models.User, error)
}

// BearerToken extracts the bearer token from the Authorization header
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// AuthMiddleware gates a route on a resolvable session. On success the
// resolved user is stored on the request context for handlers and the
// role guard.
func AuthMiddleware(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		user, err := resolver.ResolveSession(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionExpired):
				return response.Unauthorized(c, "Session expired, please login again")
			case errors.Is(err, domain.ErrUserInactive):
				return response.Unauthorized(c, "User account is inactive")
			case errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrSessionRevoked),
				errors.Is(err, domain.ErrUserNotFound):
				return response.Unauthorized(c, "Invalid or expired session")
			default:
				return response.InternalServerError(c)
			}
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRole gates a route on the role hierarchy: the caller's role
// must satisfy the required minimum. This is the only place the backend
// decides "is admin".
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Unauthorized(c, "Authentication required")
		}

		if !user.GetRole().AtLeast(min) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// AdminOnly allows ADMIN and above
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// SuperAdminOnly allows SUPER_ADMIN only
func SuperAdminOnly() fiber.Handler {
	return RequireRole(domain.RoleSuperAdmin)
}

// CurrentUser returns the user resolved by AuthMiddleware, or nil
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
