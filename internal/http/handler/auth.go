package handler

import (
	"backend-quicklink/internal/config"
	"backend-quicklink/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	if h.admin.PasswordHash == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin account is not configured",
		})
	}

	if req.Email != h.admin.Email {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	token, err := config.GenerateToken(h.admin.ID, h.admin.Name, h.admin.Email, models.RoleAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": models.UserResponse{
			ID:    h.admin.ID,
			Name:  h.admin.Name,
			Email: h.admin.Email,
			Role:  models.RoleAdmin,
		},
		"message": "Login successful! Welcome back, " + h.admin.Name,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}
