package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleRider      = "rider"
	RoleProvider   = "provider"
)

const (
	StaffActive   = "active"
	StaffInactive = "inactive"
)

var StaffRoles = []string{RoleAdmin, RoleDispatcher, RoleRider, RoleProvider}

func ValidStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Staff struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	JoinDate      time.Time `json:"join_date"`
	CompletedJobs int       `json:"completed_jobs"`
	Rating        float64   `json:"rating"`
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CreateStaffInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,max=20"`
	Role   string `json:"role" validate:"required,oneof=admin dispatcher rider provider"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateStaffInput - partial update, empty/nil fields are left untouched
type UpdateStaffInput struct {
	Name          string   `json:"name" validate:"omitempty,max=255"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Role          string   `json:"role" validate:"omitempty,oneof=admin dispatcher rider provider"`
	Status        string   `json:"status" validate:"omitempty,oneof=active inactive"`
	CompletedJobs *int     `json:"completed_jobs" validate:"omitempty,min=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
}
