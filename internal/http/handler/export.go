package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportSnapshot - full ledger and roster dump for ops backups. The
// in-memory store has no durable copy, so this is the only way to take
// one before a restart.
func (h *Handler) ExportSnapshot(c *fiber.Ctx) error {
	fileName := fmt.Sprintf("quicklink-%s.json", time.Now().Format("20060102-150405"))
	c.Set("Content-Disposition", "attachment; filename="+fileName)

	return c.JSON(fiber.Map{
		"exported_at": time.Now(),
		"requests":    h.store.ListRequests(),
		"staff":       h.store.ListStaff("", ""),
	})
}
