package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
	"github.com/luxehaven/admin-api/internal/service"
)

// InquiryHandler handles the Vacation Inquiries tab endpoints.
type InquiryHandler struct {
	store port.InquiryStore
	now   func() time.Time
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(store port.InquiryStore) *InquiryHandler {
	return &InquiryHandler{store: store, now: time.Now}
}

// Register sets up inquiry routes on a protected group.
func (h *InquiryHandler) Register(router fiber.Router) {
	inquiries := router.Group("/inquiries")
	inquiries.Get("/", h.List)
	inquiries.Patch("/:id", h.UpdateStatus)
}

// List returns every inquiry plus the Monday-indexed weekday counts for the
// trailing week's chart.
func (h *InquiryHandler) List(c fiber.Ctx) error {
	inquiries, err := h.store.ListInquiries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if inquiries == nil {
		inquiries = []domain.VacationInquiry{}
	}

	return c.JSON(fiber.Map{
		"inquiries":  inquiries,
		"weeklyData": service.InquiryWeekdayCounts(inquiries, h.now()),
	})
}

// UpdateStatus moves an inquiry between new, contacted and resolved.
func (h *InquiryHandler) UpdateStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	status := domain.InquiryStatus(body.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}

	q, err := h.store.UpdateInquiryStatus(c.Context(), c.Params("id"), status)
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "inquiry not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(q)
}
