package handlers

import (
	"github.com/gofiber/fiber/v2"

	"velocity/internal/domain"
	"velocity/internal/log"
	"velocity/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type orderRequest struct {
	UserID       string                `json:"userId"`
	Items        []domain.CartLineItem `json:"items"`
	Total        float64               `json:"total"`
	ShippingInfo map[string]any        `json:"shippingInfo"`
	PaymentInfo  map[string]any        `json:"paymentInfo"`
}

// Create materializes an order from the submitted snapshot. There is no
// payment or address validation here, and the caller's cart is left alone.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "invalid request body"})
	}

	o, err := h.Orders.Create(services.OrderInput{
		UserID:       req.UserID,
		Items:        req.Items,
		Total:        req.Total,
		ShippingInfo: req.ShippingInfo,
		PaymentInfo:  req.PaymentInfo,
	})
	if err != nil {
		log.Error(c, "order.create", err, map[string]any{"userId": req.UserID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "could not persist order"})
	}

	log.Audit(c, "order.created", map[string]any{"orderId": o.ID, "userId": o.UserID, "total": o.Total})
	return c.JSON(o)
}
