package store

import (
	"fmt"
	"strings"
	"time"

	"backend-quicklink/internal/models"
)

// findStaff - index into s.staff, -1 when absent. Caller holds the lock.
func (s *Store) findStaff(id string) int {
	for i := range s.staff {
		if s.staff[i].ID == id {
			return i
		}
	}
	return -1
}

// AddStaff - new roster member with defaults: active, 0 completed jobs,
// rating 5.0.
func (s *Store) AddStaff(in models.CreateStaffInput) (models.Staff, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Staff{}, fmt.Errorf("%w: name", ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return models.Staff{}, fmt.Errorf("%w: email", ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return models.Staff{}, fmt.Errorf("%w: phone", ErrValidation)
	}
	if !models.ValidStaffRole(in.Role) {
		return models.Staff{}, fmt.Errorf("%w: role", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.StaffActive
	}
	if status != models.StaffActive && status != models.StaffInactive {
		return models.Staff{}, fmt.Errorf("%w: status", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.Staff{
		ID:            newID(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Role:          in.Role,
		Status:        status,
		JoinDate:      time.Now(),
		CompletedJobs: 0,
		Rating:        5.0,
	}
	s.staff = append(s.staff, member)

	return member, nil
}

// UpdateStaff - merges the supplied fields over the existing record.
// Identity and join date are never touched.
func (s *Store) UpdateStaff(id string, in models.UpdateStaffInput) error {
	if in.Role != "" && !models.ValidStaffRole(in.Role) {
		return fmt.Errorf("%w: role", ErrValidation)
	}
	if in.Status != "" && in.Status != models.StaffActive && in.Status != models.StaffInactive {
		return fmt.Errorf("%w: status", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findStaff(id)
	if i < 0 {
		return ErrStaffNotFound
	}

	if in.Name != "" {
		s.staff[i].Name = in.Name
	}
	if in.Email != "" {
		s.staff[i].Email = in.Email
	}
	if in.Phone != "" {
		s.staff[i].Phone = in.Phone
	}
	if in.Role != "" {
		s.staff[i].Role = in.Role
	}
	if in.Status != "" {
		s.staff[i].Status = in.Status
	}
	if in.CompletedJobs != nil {
		s.staff[i].CompletedJobs = *in.CompletedJobs
	}
	if in.Rating != nil {
		s.staff[i].Rating = *in.Rating
	}
	return nil
}

// RemoveStaff - admin records are protected. No check for open
// assignments; requests keep their assigned_to value after removal.
func (s *Store) RemoveStaff(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findStaff(id)
	if i < 0 {
		return ErrStaffNotFound
	}
	if s.staff[i].Role == models.RoleAdmin {
		return ErrAdminProtected
	}
	s.staff = append(s.staff[:i], s.staff[i+1:]...)
	return nil
}

// ToggleStaffStatus - flips active/inactive.
func (s *Store) ToggleStaffStatus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findStaff(id)
	if i < 0 {
		return ErrStaffNotFound
	}
	if s.staff[i].Status == models.StaffActive {
		s.staff[i].Status = models.StaffInactive
	} else {
		s.staff[i].Status = models.StaffActive
	}
	return nil
}

// ListStaff - snapshot in roster order. Role filter is exact; search
// matches name, email or phone substring, case-insensitive.
func (s *Store) ListStaff(role, search string) []models.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(strings.TrimSpace(search))

	out := []models.Staff{}
	for _, member := range s.staff {
		if role != "" && member.Role != role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(member.Name), search) &&
			!strings.Contains(strings.ToLower(member.Email), search) &&
			!strings.Contains(strings.ToLower(member.Phone), search) {
			continue
		}
		out = append(out, member)
	}
	return out
}

func (s *Store) GetStaff(id string) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findStaff(id)
	if i < 0 {
		return models.Staff{}, ErrStaffNotFound
	}
	return s.staff[i], nil
}
