package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/session"
)

// TokenVerifier recovers the user from a session token, reporting any
// failure as absence.
type TokenVerifier interface {
	Verify(raw string) (*domain.User, bool)
}

const localsUserKey = "user"

// RequireAuth verifies the session token (cookie or bearer header) on every
// API request and injects the recovered user into the request context. Unlike
// the route guard this is a full cryptographic check: expired and tampered
// tokens are rejected here even though they pass the page gate.
func RequireAuth(store session.Store, tokens TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := store.Read(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization",
			})
		}

		user, ok := tokens.Verify(raw)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// GetUser extracts the authenticated user from the request context, or nil
// outside a RequireAuth-protected route.
func GetUser(c fiber.Ctx) *domain.User {
	u, ok := c.Locals(localsUserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}
