package store

import (
	"fmt"
	"strings"
	"time"

	"backend-quicklink/internal/models"
)

// CreateRequest - appends a new request to the ledger and returns its
// reference number. Status always starts at pending.
func (s *Store) CreateRequest(in models.CreateRequestInput) (string, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return "", fmt.Errorf("%w: customer_name", ErrValidation)
	}
	if strings.TrimSpace(in.PickupLocation) == "" {
		return "", fmt.Errorf("%w: pickup_location", ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return "", fmt.Errorf("%w: description", ErrValidation)
	}
	if in.Budget != nil && *in.Budget < 0 {
		return "", fmt.Errorf("%w: budget", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	req := models.ServiceRequest{
		ID:                newID(),
		ReferenceNumber:   NextReference(len(s.requests) + 1),
		ServiceType:       in.ServiceType,
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		PickupLocation:    in.PickupLocation,
		DropoffLocation:   in.DropoffLocation,
		Description:       in.Description,
		PreferredDateTime: in.PreferredDateTime,
		Budget:            in.Budget,
		Status:            models.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.requests = append(s.requests, req)

	return req.ReferenceNumber, nil
}

// UpdateStatus - operator override; any status may follow any other.
// Notes are overwritten only when supplied, otherwise kept.
func (s *Store) UpdateStatus(id, status string, notes *string) error {
	if !models.ValidRequestStatus(status) {
		return fmt.Errorf("%w: status", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			if notes != nil {
				s.requests[i].Notes = *notes
			}
			s.requests[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrRequestNotFound
}

// Assign - links a staff member to a request and forces status to
// assigned, regardless of the prior status (terminal states included).
func (s *Store) Assign(id, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findStaff(staffID) < 0 {
		return ErrStaffNotFound
	}

	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].AssignedTo = staffID
			s.requests[i].Status = models.StatusAssigned
			s.requests[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrRequestNotFound
}

// CompleteAssignment - marks the request completed and credits the
// assignee's completed-jobs counter in one step, so the two never drift.
func (s *Store) CompleteAssignment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if s.requests[i].AssignedTo == "" {
			return ErrNotAssigned
		}
		if j := s.findStaff(s.requests[i].AssignedTo); j >= 0 {
			s.staff[j].CompletedJobs++
		}
		s.requests[i].Status = models.StatusCompleted
		s.requests[i].UpdatedAt = time.Now()
		return nil
	}
	return ErrRequestNotFound
}

// ListRequests - snapshot copy in insertion order.
func (s *Store) ListRequests() []models.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ServiceRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Store) GetRequest(id string) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			return s.requests[i], nil
		}
	}
	return models.ServiceRequest{}, ErrRequestNotFound
}
