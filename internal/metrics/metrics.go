// Package metrics derives reporting aggregates from ledger and roster
// snapshots. Everything here is a pure function; callers pass the slices
// returned by the store's list operations.
package metrics

import (
	"math"
	"sort"

	"backend-quicklink/internal/models"
)

// StatusDistribution - count per status, zero-count statuses omitted.
func StatusDistribution(requests []models.ServiceRequest) map[string]int {
	out := map[string]int{}
	for _, req := range requests {
		out[req.Status]++
	}
	return out
}

// ServiceDistribution - count per service type, exact string match.
func ServiceDistribution(requests []models.ServiceRequest) map[string]int {
	out := map[string]int{}
	for _, req := range requests {
		out[req.ServiceType]++
	}
	return out
}

// CompletionRate - completed / total * 100, one decimal place, 0 for an
// empty ledger.
func CompletionRate(requests []models.ServiceRequest) float64 {
	if len(requests) == 0 {
		return 0
	}
	completed := 0
	for _, req := range requests {
		if req.Status == models.StatusCompleted {
			completed++
		}
	}
	rate := float64(completed) / float64(len(requests)) * 100
	return math.Round(rate*10) / 10
}

// AverageRating - mean staff rating, 0 for an empty roster.
func AverageRating(staff []models.Staff) float64 {
	if len(staff) == 0 {
		return 0
	}
	sum := 0.0
	for _, member := range staff {
		sum += member.Rating
	}
	return sum / float64(len(staff))
}

// TopPerformers - non-admin staff by completed jobs, descending. Ties keep
// roster order. limit <= 0 means no limit.
func TopPerformers(staff []models.Staff, limit int) []models.Staff {
	out := []models.Staff{}
	for _, member := range staff {
		if member.Role == models.RoleAdmin {
			continue
		}
		out = append(out, member)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedJobs > out[j].CompletedJobs
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Recent - requests by creation time, newest first, truncated to limit.
func Recent(requests []models.ServiceRequest, limit int) []models.ServiceRequest {
	out := make([]models.ServiceRequest, len(requests))
	copy(out, requests)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
