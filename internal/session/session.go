// Package session owns the server side of session-token storage: the
// adminToken cookie. Handlers and middleware go through Store so no call
// site sets or parses the cookie directly.
package session

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// CookieName is the session cookie read by the route guard on every request.
const CookieName = "adminToken"

// TTL is the cookie lifetime, matching the token expiry.
const TTL = 24 * time.Hour

// Store writes, reads and clears the session token on a request context.
type Store struct {
	// Secure marks the cookie HTTPS-only. Disabled only for local development.
	Secure bool
}

// Write sets the session cookie. The caller also returns the token in the
// login response body; clients keep that copy in their own local store.
func (s Store) Write(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		Secure:   s.Secure,
		HTTPOnly: false, // the dashboard reads it back on mount
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// Read returns the token from the cookie, falling back to a bearer
// Authorization header for API clients that do not carry cookies.
func (s Store) Read(c fiber.Ctx) string {
	if tok := c.Cookies(CookieName); tok != "" {
		return tok
	}
	auth := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Clear expires the session cookie.
func (s Store) Clear(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
