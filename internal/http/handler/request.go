package handler

import (
	"errors"
	"strings"

	"backend-quicklink/internal/models"
	"backend-quicklink/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest - public submission endpoint; hands back the reference
// number for the confirmation screen.
func (h *Handler) CreateRequest(c *fiber.Ctx) error {
	var req models.CreateRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ServiceType == "" || req.CustomerPhone == "" || req.CustomerEmail == "" || req.PreferredDateTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service, contact details and preferred date are required",
		})
	}

	ref, err := h.store.CreateRequest(req)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":          true,
		"message":          "Request received! Keep your reference number.",
		"reference_number": ref,
	})
}

// GetAllRequests - public listing ("My Requests" view). Optional status
// filter and reference/name/phone search.
func (h *Handler) GetAllRequests(c *fiber.Ctx) error {
	status := c.Query("status")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	requests := h.store.ListRequests()

	filtered := []models.ServiceRequest{}
	for _, req := range requests {
		if status != "" && req.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(req.ReferenceNumber), search) &&
			!strings.Contains(strings.ToLower(req.CustomerName), search) &&
			!strings.Contains(strings.ToLower(req.CustomerPhone), search) {
			continue
		}
		filtered = append(filtered, req)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered,
	})
}

// GetAllRequestsPagination - same listing with page/limit for the
// management table.
func (h *Handler) GetAllRequestsPagination(c *fiber.Ctx) error {
	status := c.Query("status")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	requests := h.store.ListRequests()

	filtered := []models.ServiceRequest{}
	for _, req := range requests {
		if status != "" && req.Status != status {
			continue
		}
		filtered = append(filtered, req)
	}

	totalData := len(filtered)
	totalPages := (totalData + limit - 1) / limit

	offset := (page - 1) * limit
	if offset > totalData {
		offset = totalData
	}
	end := offset + limit
	if end > totalData {
		end = totalData
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered[offset:end],
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_data":  totalData,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) GetRequestByID(c *fiber.Ctx) error {
	id := c.Params("id")

	req, err := h.store.GetRequest(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Request not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    req,
	})
}

// UpdateRequestStatus - operator override; the ledger allows any status
// to follow any other.
func (h *Handler) UpdateRequestStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status is required",
		})
	}

	err := h.store.UpdateStatus(id, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		if errors.Is(err, store.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown status: " + req.Status,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	updated, _ := h.store.GetRequest(id)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status updated",
		"data":    updated,
	})
}

// AssignRequest - links a staff member and forces status to assigned.
func (h *Handler) AssignRequest(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.StaffID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "staff_id is required",
		})
	}

	err := h.store.Assign(id, req.StaffID)
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		if errors.Is(err, store.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Staff not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to assign request",
		})
	}

	updated, _ := h.store.GetRequest(id)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Request assigned",
		"data":    updated,
	})
}

// CompleteRequest - transactional completion: marks the request done and
// credits the assignee's completed-jobs counter.
func (h *Handler) CompleteRequest(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.CompleteAssignment(id)
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		if errors.Is(err, store.ErrNotAssigned) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Request has no assigned staff",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete request",
		})
	}

	updated, _ := h.store.GetRequest(id)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Request completed",
		"data":    updated,
	})
}
