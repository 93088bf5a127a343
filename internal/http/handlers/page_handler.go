package handlers

import (
	"github.com/gofiber/fiber/v2"

	"velocity/internal/services"
)

// PageHandler serves the thin demo pages; the real storefront UI is a
// separate client that talks to /api.
type PageHandler struct {
	Catalog *services.CatalogService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	products := h.Catalog.Query(services.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	})
	return c.Render("index", fiber.Map{"Products": products})
}
