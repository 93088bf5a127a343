package handlers

import (
	"github.com/gofiber/fiber/v2"

	"velocity/internal/log"
	"velocity/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "invalid request body"})
	}

	res, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"userId": res.UserID})
	return c.JSON(res)
}
