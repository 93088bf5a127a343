package handlers

import (
	"github.com/gofiber/fiber/v2"

	"velocity/internal/log"
	"velocity/internal/services"
	"velocity/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type addRequest struct {
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Image     string  `json:"image"`
}

type updateRequest struct {
	UserID   string `json:"userId"`
	Quantity *int   `json:"quantity"`
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Cart.Get(c.Params("userId")))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "invalid request body"})
	}
	if !validate.Required(req.UserID, req.ProductID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "userId and productId are required"})
	}

	cart, err := h.Cart.Add(req.UserID, services.NewItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Image:     req.Image,
	})
	if err != nil {
		log.Error(c, "cart.add", err, map[string]any{"userId": req.UserID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist cart"})
	}

	if h.Cart.Policy.ScanAllCarts {
		// Legacy boundary envelope: no cart echo.
		return c.JSON(fiber.Map{"success": true, "message": "Added to cart"})
	}
	return c.JSON(cart)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "invalid request body"})
	}
	if req.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "quantity is required"})
	}

	if h.Cart.Policy.ScanAllCarts {
		if _, err := h.Cart.UpdateQuantity("", itemID, *req.Quantity); err != nil {
			log.Error(c, "cart.update", err, map[string]any{"itemId": itemID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist cart"})
		}
		return c.JSON(fiber.Map{"success": true})
	}

	if !validate.Required(req.UserID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "userId is required"})
	}
	cart, err := h.Cart.UpdateQuantity(req.UserID, itemID, *req.Quantity)
	if err != nil {
		log.Error(c, "cart.update", err, map[string]any{"userId": req.UserID, "itemId": itemID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist cart"})
	}
	return c.JSON(cart)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	if h.Cart.Policy.ScanAllCarts {
		if _, err := h.Cart.Remove("", itemID); err != nil {
			log.Error(c, "cart.remove", err, map[string]any{"itemId": itemID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist cart"})
		}
		return c.JSON(fiber.Map{"success": true})
	}

	userID := c.Query("userId")
	if !validate.Required(userID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "userId is required"})
	}
	cart, err := h.Cart.Remove(userID, itemID)
	if err != nil {
		log.Error(c, "cart.remove", err, map[string]any{"userId": userID, "itemId": itemID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist cart"})
	}
	return c.JSON(cart)
}
