package handler

import (
	"backend-quicklink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCatalog - the fixed service catalog shown on the booking form.
func (h *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ServiceCatalog,
	})
}
