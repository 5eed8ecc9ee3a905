package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// ListingHandler handles the Properties tab endpoints.
type ListingHandler struct {
	store port.ListingStore
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(store port.ListingStore) *ListingHandler {
	return &ListingHandler{store: store}
}

// Register sets up listing routes on a protected group.
func (h *ListingHandler) Register(router fiber.Router) {
	listings := router.Group("/listings")
	listings.Get("/", h.List)
	listings.Get("/:id", h.Get)
	listings.Patch("/:id", h.Update)
	listings.Delete("/:id", h.Delete)
}

// List returns a paginated, searchable page of listings.
func (h *ListingHandler) List(c fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	search := c.Query("search", "")

	listings, total, err := h.store.ListListings(c.Context(), page, limit, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	totalPages := (total + limit - 1) / limit

	return c.JSON(fiber.Map{
		"listings":    listings,
		"totalCount":  total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// Get returns a single listing.
func (h *ListingHandler) Get(c fiber.Ctx) error {
	l, err := h.store.GetListingByID(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(l)
}

// Update applies a partial update. Only the fields in domain.ListingUpdate
// are bindable, so clients cannot touch anything else.
func (h *ListingHandler) Update(c fiber.Ctx) error {
	var upd domain.ListingUpdate
	if err := c.Bind().JSON(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	l, err := h.store.UpdateListing(c.Context(), c.Params("id"), upd)
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(l)
}

// Delete removes a listing.
func (h *ListingHandler) Delete(c fiber.Ctx) error {
	err := h.store.DeleteListing(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// queryInt reads an integer query param with a default value.
func queryInt(c fiber.Ctx, key string, defaultVal int) int {
	v := c.Query(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return defaultVal
	}
	return n
}
