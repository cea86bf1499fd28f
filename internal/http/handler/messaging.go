package handler

import (
	"backend-quicklink/internal/models"
	"backend-quicklink/internal/notify"

	"github.com/gofiber/fiber/v2"
)

// SendMessage - pushes one outbound message through the (simulated)
// delivery provider.
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var req models.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Recipient == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Recipient and message are required",
		})
	}

	if !notify.ValidChannel(req.Channel) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Channel must be sms, whatsapp or email",
		})
	}

	if err := h.notifier.Send(c.Context(), req.Channel, req.Recipient, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent via " + req.Channel,
	})
}

// GetMessageStats - today's per-channel delivery counters.
func (h *Handler) GetMessageStats(c *fiber.Ctx) error {
	stats := h.notifier.StatsToday(c.Context())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func (h *Handler) GetMessageTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.MessageTemplates,
	})
}
