package handler

import (
	"errors"

	"backend-quicklink/internal/models"
	"backend-quicklink/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GetAllStaff - roster listing with optional role filter and search.
func (h *Handler) GetAllStaff(c *fiber.Ctx) error {
	role := c.Query("role")
	search := c.Query("search")

	staff := h.store.ListStaff(role, search)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    staff,
	})
}

func (h *Handler) GetStaffByID(c *fiber.Ctx) error {
	id := c.Params("id")

	member, err := h.store.GetStaff(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    member,
	})
}

func (h *Handler) CreateStaff(c *fiber.Ctx) error {
	var req models.CreateStaffInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member, err := h.store.AddStaff(req)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create staff",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Staff member added",
		"data":    member,
	})
}

func (h *Handler) UpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateStaffInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	err := h.store.UpdateStaff(id, req)
	if err != nil {
		if errors.Is(err, store.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Staff not found",
			})
		}
		if errors.Is(err, store.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update staff",
		})
	}

	member, _ := h.store.GetStaff(id)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Staff member updated",
		"data":    member,
	})
}

// DeleteStaff - admin records are protected from removal.
func (h *Handler) DeleteStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.RemoveStaff(id)
	if err != nil {
		if errors.Is(err, store.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Staff not found",
			})
		}
		if errors.Is(err, store.ErrAdminProtected) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin accounts cannot be removed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove staff",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Staff member removed",
	})
}

func (h *Handler) ToggleStaffStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.ToggleStaffStatus(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff not found",
		})
	}

	member, _ := h.store.GetStaff(id)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Staff status toggled",
		"data":    member,
	})
}
