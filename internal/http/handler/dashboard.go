package handler

import (
	"backend-quicklink/internal/metrics"
	"backend-quicklink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard - headline numbers for the admin dashboard.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	requests := h.store.ListRequests()
	staff := h.store.ListStaff("", "")

	// ===========================
	// 1. SUMMARY DATA
	// ===========================
	statusDist := metrics.StatusDistribution(requests)

	activeStaff := 0
	for _, member := range staff {
		if member.Status == models.StaffActive {
			activeStaff++
		}
	}

	// ===========================
	// 2. CHART DATA
	// ===========================
	serviceDist := metrics.ServiceDistribution(requests)

	// ===========================
	// 3. RECENT REQUESTS
	// ===========================
	recent := metrics.Recent(requests, 5)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_requests":       len(requests),
			"pending_requests":     statusDist[models.StatusPending],
			"in_progress_requests": statusDist[models.StatusInProgress],
			"completed_requests":   statusDist[models.StatusCompleted],
			"active_staff":         activeStaff,
			"status_distribution":  statusDist,
			"service_distribution": serviceDist,
			"recent_requests":      recent,
		},
	})
}

// GetAnalytics - reporting view: completion rate, ratings and the
// performance ranking.
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	requests := h.store.ListRequests()
	staff := h.store.ListStaff("", "")

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_requests":       len(requests),
			"completion_rate":      metrics.CompletionRate(requests),
			"average_rating":       metrics.AverageRating(staff),
			"status_distribution":  metrics.StatusDistribution(requests),
			"service_distribution": metrics.ServiceDistribution(requests),
			"top_performers":       metrics.TopPerformers(staff, limit),
		},
	})
}
