package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// OverviewHandler serves the combined dashboard overview.
type OverviewHandler struct {
	bookings    port.BookingStore
	inquiries   port.InquiryStore
	memberships port.MembershipStore
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(bookings port.BookingStore, inquiries port.InquiryStore, memberships port.MembershipStore) *OverviewHandler {
	return &OverviewHandler{bookings: bookings, inquiries: inquiries, memberships: memberships}
}

// Register sets up the overview route on a protected group.
func (h *OverviewHandler) Register(router fiber.Router) {
	router.Get("/dashboard/overview", h.Overview)
}

// Overview returns bookings, inquiries and memberships in one response so
// the dashboard landing page loads with a single request.
func (h *OverviewHandler) Overview(c fiber.Ctx) error {
	ctx := c.Context()

	bookings, err := h.bookings.ListAllBookings(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	inquiries, err := h.inquiries.ListInquiries(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if inquiries == nil {
		inquiries = []domain.VacationInquiry{}
	}

	members, err := h.memberships.ListMemberships(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if members == nil {
		members = []domain.LuxeMembership{}
	}

	return c.JSON(fiber.Map{
		"bookings":  bookings,
		"inquiries": inquiries,
		"members":   members,
	})
}
