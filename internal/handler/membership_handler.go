package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// MembershipHandler handles the Members tab endpoints.
type MembershipHandler struct {
	store port.MembershipStore
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(store port.MembershipStore) *MembershipHandler {
	return &MembershipHandler{store: store}
}

// Register sets up membership routes on a protected group.
func (h *MembershipHandler) Register(router fiber.Router) {
	members := router.Group("/memberships")
	members.Get("/", h.List)
	members.Delete("/:id", h.Delete)
}

// List returns every membership signup.
func (h *MembershipHandler) List(c fiber.Ctx) error {
	members, err := h.store.ListMemberships(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if members == nil {
		members = []domain.LuxeMembership{}
	}
	return c.JSON(fiber.Map{"members": members})
}

// Delete removes a membership.
func (h *MembershipHandler) Delete(c fiber.Ctx) error {
	err := h.store.DeleteMembership(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "membership not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
