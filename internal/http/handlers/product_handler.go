package handlers

import (
	"github.com/gofiber/fiber/v2"

	"velocity/internal/services"
	"velocity/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := services.Query{
		Category: c.Query("category"),
		Search:   validate.Search(c.Query("search")),
		Sort:     c.Query("sort"),
	}
	return c.JSON(h.Catalog.Query(q))
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
	}
	p, ok := h.Catalog.GetByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
	}
	return c.JSON(p)
}
