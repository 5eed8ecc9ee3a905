package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/session"
)

// GuardConfig holds the static route prefix lists checked by the page guard.
type GuardConfig struct {
	// ProtectedPrefixes require a session cookie to be present.
	ProtectedPrefixes []string
	// AuthPrefixes (login, password reset) redirect away when a session
	// cookie is already present.
	AuthPrefixes []string
	// LoginRoute and DashboardRoute are the redirect targets.
	LoginRoute     string
	DashboardRoute string
}

// DefaultGuardConfig returns the back office's route lists.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		ProtectedPrefixes: []string{"/dashboard"},
		AuthPrefixes:      []string{"/login", "/forgot-password"},
		LoginRoute:        "/login",
		DashboardRoute:    "/dashboard",
	}
}

// RouteGuard intercepts page requests before rendering and redirects based on
// session-cookie *presence* only. Lists are checked in order, first match
// wins; paths matching neither list always pass through.
//
// This is a UX gate, not the security boundary: API routes independently
// verify the token via RequireAuth.
func RouteGuard(cfg GuardConfig) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		hasToken := c.Cookies(session.CookieName) != ""

		if hasPrefix(path, cfg.ProtectedPrefixes) && !hasToken {
			return c.Redirect().To(cfg.LoginRoute)
		}
		if hasPrefix(path, cfg.AuthPrefixes) && hasToken {
			return c.Redirect().To(cfg.DashboardRoute)
		}
		return c.Next()
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
