package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/session"
	"github.com/luxehaven/admin-api/internal/token"
)

func newAPIApp(issuer *token.Issuer) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", RequireAuth(session.Store{}, issuer))
	api.Get("/whoami", func(c fiber.Ctx) error {
		return c.JSON(GetUser(c))
	})
	return app
}

func TestRequireAuth_MissingToken(t *testing.T) {
	app := newAPIApp(token.NewIssuer("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_CookieToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret")
	app := newAPIApp(issuer)

	raw, err := issuer.Issue(&domain.User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: raw})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "admin@example.com", got.Email)
}

func TestRequireAuth_BearerToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret")
	app := newAPIApp(issuer)

	raw, err := issuer.Issue(&domain.User{ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	stale := token.NewIssuer("test-secret", token.WithNow(func() time.Time { return past }))
	raw, err := stale.Issue(&domain.User{ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	app := newAPIApp(token.NewIssuer("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: raw})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	app := newAPIApp(token.NewIssuer("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
