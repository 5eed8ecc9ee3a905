package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/middleware"
	"github.com/luxehaven/admin-api/internal/service"
	"github.com/luxehaven/admin-api/internal/session"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	auth     *service.AuthService
	sessions session.Store
	audit    middleware.AuditWriter
}

// NewAuthHandler creates a new auth handler. audit may be nil; then login
// and logout leave no audit records.
func NewAuthHandler(auth *service.AuthService, sessions session.Store, audit middleware.AuditWriter) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, audit: audit}
}

// Register sets up auth routes. These stay outside the protected group:
// login must be reachable without a session, and logout/me handle their own
// token state.
func (h *AuthHandler) Register(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.Me)
}

// Login exchanges an email/password pair for a session token. The token is
// returned in the body and set as the session cookie, so both browser and
// API clients end up authenticated.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	token, user, err := h.auth.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}
	if user == nil {
		// Same response for unknown email and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	h.sessions.Write(c, token)
	h.writeAudit(c, user.ID, domain.AuditActionLogin, user.Email)
	slog.Info("admin logged in", "email", user.Email)

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout clears the session cookie. Always succeeds, even without a session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	userID := "anonymous"
	email := ""
	if user, ok := h.auth.VerifyToken(h.sessions.Read(c)); ok {
		userID = user.ID
		email = user.Email
	}

	h.sessions.Clear(c)
	h.writeAudit(c, userID, domain.AuditActionLogout, email)
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the user behind the current session token, letting clients
// restore their auth state on startup.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	raw := h.sessions.Read(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization"})
	}
	user, ok := h.auth.VerifyToken(raw)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) writeAudit(c fiber.Ctx, userID, action, email string) {
	if h.audit == nil {
		return
	}
	details, _ := json.Marshal(map[string]string{"email": email})
	if err := h.audit.WriteAudit(userID, action, "auth", "", string(details),
		c.IP(), c.Get("User-Agent")); err != nil {
		slog.Error("failed to write audit log", "error", err)
	}
}
