package store

import "errors"

var (
	ErrValidation      = errors.New("missing or invalid required field")
	ErrRequestNotFound = errors.New("request not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrAdminProtected  = errors.New("admin staff cannot be removed")
	ErrNotAssigned     = errors.New("request has no assigned staff")
)
