package metrics

import (
	"testing"
	"time"

	"backend-quicklink/internal/models"
)

func requestsWithStatuses(statuses ...string) []models.ServiceRequest {
	out := make([]models.ServiceRequest, len(statuses))
	for i, status := range statuses {
		out[i] = models.ServiceRequest{Status: status}
	}
	return out
}

func TestStatusDistribution(t *testing.T) {
	requests := requestsWithStatuses(
		models.StatusPending,
		models.StatusPending,
		models.StatusCompleted,
	)

	dist := StatusDistribution(requests)
	if dist[models.StatusPending] != 2 || dist[models.StatusCompleted] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
	if _, ok := dist[models.StatusCancelled]; ok {
		t.Fatal("zero-count status must be omitted")
	}
	if len(dist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(dist))
	}
}

func TestServiceDistribution(t *testing.T) {
	requests := []models.ServiceRequest{
		{ServiceType: "Taxi Rides"},
		{ServiceType: "Taxi Rides"},
		{ServiceType: "Grocery Shopping"},
	}

	dist := ServiceDistribution(requests)
	if dist["Taxi Rides"] != 2 || dist["Grocery Shopping"] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
	// case-sensitive, no normalization
	if _, ok := dist["taxi rides"]; ok {
		t.Fatal("service types must not be normalized")
	}
}

func TestCompletionRate(t *testing.T) {
	if got := CompletionRate(nil); got != 0 {
		t.Fatalf("empty ledger rate = %v, want 0", got)
	}

	requests := requestsWithStatuses(
		models.StatusCompleted,
		models.StatusCompleted,
		models.StatusPending,
	)
	// 2/3 * 100 rounded to one decimal
	if got := CompletionRate(requests); got != 66.7 {
		t.Fatalf("rate = %v, want 66.7", got)
	}

	all := requestsWithStatuses(models.StatusCompleted, models.StatusCompleted)
	if got := CompletionRate(all); got != 100 {
		t.Fatalf("rate = %v, want 100", got)
	}
}

func TestAverageRating(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Fatalf("empty roster rating = %v, want 0", got)
	}

	staff := []models.Staff{{Rating: 5.0}}
	if got := AverageRating(staff); got != 5.0 {
		t.Fatalf("rating = %v, want 5.0", got)
	}

	staff = append(staff, models.Staff{Rating: 4.0})
	if got := AverageRating(staff); got != 4.5 {
		t.Fatalf("rating = %v, want 4.5", got)
	}
}

func TestTopPerformers(t *testing.T) {
	staff := []models.Staff{
		{Name: "Admin User", Role: models.RoleAdmin, CompletedJobs: 999},
		{Name: "Michael", Role: models.RoleRider, CompletedJobs: 245},
		{Name: "Sarah", Role: models.RoleDispatcher, CompletedJobs: 245},
		{Name: "Peter", Role: models.RoleProvider, CompletedJobs: 10},
	}

	top := TopPerformers(staff, 0)
	if len(top) != 3 {
		t.Fatalf("expected 3 performers, got %d", len(top))
	}
	// admins excluded, ties keep roster order
	if top[0].Name != "Michael" || top[1].Name != "Sarah" || top[2].Name != "Peter" {
		t.Fatalf("unexpected order: %v, %v, %v", top[0].Name, top[1].Name, top[2].Name)
	}

	if got := TopPerformers(staff, 2); len(got) != 2 {
		t.Fatalf("limit 2: got %d", len(got))
	}
}

func TestRecent(t *testing.T) {
	base := time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC)
	requests := []models.ServiceRequest{
		{ReferenceNumber: "QL001", CreatedAt: base},
		{ReferenceNumber: "QL002", CreatedAt: base.Add(time.Hour)},
		{ReferenceNumber: "QL003", CreatedAt: base.Add(2 * time.Hour)},
	}

	recent := Recent(requests, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2, got %d", len(recent))
	}
	if recent[0].ReferenceNumber != "QL003" || recent[1].ReferenceNumber != "QL002" {
		t.Fatalf("unexpected order: %v, %v", recent[0].ReferenceNumber, recent[1].ReferenceNumber)
	}

	// input order is untouched
	if requests[0].ReferenceNumber != "QL001" {
		t.Fatal("Recent must not reorder its input")
	}
}
