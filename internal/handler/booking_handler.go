package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
	"github.com/luxehaven/admin-api/internal/service"
)

// BookingHandler handles the Bookings tab endpoints.
type BookingHandler struct {
	store port.BookingStore
	now   func() time.Time
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(store port.BookingStore) *BookingHandler {
	return &BookingHandler{store: store, now: time.Now}
}

// Register sets up booking routes on a protected group.
func (h *BookingHandler) Register(router fiber.Router) {
	bookings := router.Group("/bookings")
	bookings.Get("/", h.List)
	bookings.Get("/:id", h.Get)
	bookings.Patch("/:id", h.UpdateStatus)
}

// List returns a paginated booking page plus the per-status counts and
// seven-day chart data the dashboard renders alongside it.
func (h *BookingHandler) List(c fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	search := c.Query("search", "")

	ctx := c.Context()

	bookings, total, err := h.store.ListBookings(ctx, page, limit, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	stats, err := h.store.CountBookingsByStatus(ctx, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := h.now()
	since := now.AddDate(0, 0, -6)
	since = time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())

	created, err := h.store.BookingCreationTimes(ctx, since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	weeklyData, weekDates := service.WeeklyBookingCounts(created, now)

	return c.JSON(fiber.Map{
		"bookings":   bookings,
		"total":      total,
		"stats":      stats,
		"weeklyData": weeklyData,
		"weekDates":  weekDates,
	})
}

// Get returns a single booking.
func (h *BookingHandler) Get(c fiber.Ctx) error {
	b, err := h.store.GetBookingByID(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(b)
}

// UpdateStatus moves a booking between confirmed, pending and cancelled.
func (h *BookingHandler) UpdateStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	status := domain.BookingStatus(body.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}

	b, err := h.store.UpdateBookingStatus(c.Context(), c.Params("id"), status)
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(b)
}
