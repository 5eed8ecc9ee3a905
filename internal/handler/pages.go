package handler

import (
	"github.com/gofiber/fiber/v3"
)

// PageHandler serves the back-office page shells. The dashboard frontend is
// a static bundle in production; these handlers exist so the route guard has
// real pages to gate and local development works without the bundle.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Register sets up the page routes. The route guard middleware runs before
// these, so /dashboard only renders with a session token present and /login
// only without one.
func (h *PageHandler) Register(app fiber.Router) {
	app.Get("/dashboard", h.page("Dashboard"))
	app.Get("/dashboard/*", h.page("Dashboard"))
	app.Get("/login", h.page("Sign In"))
	app.Get("/forgot-password", h.page("Forgot Password"))
}

func (h *PageHandler) page(title string) fiber.Handler {
	body := `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>` + title + ` · LuxeHaven Admin</title></head>
<body><div id="root" data-page="` + title + `"></div></body>
</html>`
	return func(c fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(body)
	}
}
