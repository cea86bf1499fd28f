package models

import "time"

const (
	StatusPending    = "pending"
	StatusInReview   = "in-review"
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// RequestStatuses - all valid statuses, in normal workflow order
var RequestStatuses = []string{
	StatusPending,
	StatusInReview,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func ValidRequestStatus(status string) bool {
	for _, s := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type ServiceRequest struct {
	ID                string    `json:"id"`
	ReferenceNumber   string    `json:"reference_number"`
	ServiceType       string    `json:"service_type"`
	CustomerName      string    `json:"customer_name"`
	CustomerPhone     string    `json:"customer_phone"`
	CustomerEmail     string    `json:"customer_email"`
	PickupLocation    string    `json:"pickup_location"`
	DropoffLocation   string    `json:"dropoff_location,omitempty"`
	Description       string    `json:"description"`
	PreferredDateTime string    `json:"preferred_datetime"`
	Budget            *int      `json:"budget,omitempty"`
	Status            string    `json:"status"`
	AssignedTo        string    `json:"assigned_to,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CreateRequestInput struct {
	ServiceType       string `json:"service_type" validate:"required,max=255"`
	CustomerName      string `json:"customer_name" validate:"required,max=255"`
	CustomerPhone     string `json:"customer_phone" validate:"required,max=20"`
	CustomerEmail     string `json:"customer_email" validate:"required,email"`
	PickupLocation    string `json:"pickup_location" validate:"required,max=255"`
	DropoffLocation   string `json:"dropoff_location" validate:"omitempty,max=255"`
	Description       string `json:"description" validate:"required"`
	PreferredDateTime string `json:"preferred_datetime" validate:"required"`
	Budget            *int   `json:"budget" validate:"omitempty,min=0"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

type AssignRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
}
