package student

import (
	"strings"

	"github.com/su-ri-ya/littlechampions/core"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Grade          string `json:"grade"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	ParentName     string `json:"parent_name"`
	ParentPhone    string `json:"parent_phone"`
	EnrollmentDate string `json:"enrollment_date"`
	Status         string `json:"status"`
}

func (s Student) IsActive() bool { return s.Status == StatusActive }

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=10,max=20"`
	Grade          string `json:"grade" validate:"required"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,isodate"`
	Address        string `json:"address" validate:"required"`
	ParentName     string `json:"parent_name" validate:"required"`
	ParentPhone    string `json:"parent_phone" validate:"required,min=10,max=20"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,isodate"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (ns *NewStudent) clean() {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Grade = core.CleanString(ns.Grade)
	ns.DateOfBirth = core.CleanString(ns.DateOfBirth)
	ns.Address = core.CleanString(ns.Address)
	ns.ParentName = core.CleanString(ns.ParentName)
	ns.ParentPhone = core.CleanString(ns.ParentPhone)
	ns.EnrollmentDate = core.CleanString(ns.EnrollmentDate)
	ns.Status = core.CleanString(ns.Status)
}

// Validate cleans the input, fills the defaults then validates it.
func (ns *NewStudent) Validate() error {
	ns.clean()
	if ns.EnrollmentDate == "" {
		ns.EnrollmentDate = core.Today()
	}
	if ns.Status == "" {
		ns.Status = StatusActive
	}
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Nil fields keep their current value.
type UpdateStudent struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,min=10,max=20"`
	Grade          *string `json:"grade" validate:"omitempty,notblank"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,isodate"`
	Address        *string `json:"address" validate:"omitempty,notblank"`
	ParentName     *string `json:"parent_name" validate:"omitempty,notblank"`
	ParentPhone    *string `json:"parent_phone" validate:"omitempty,min=10,max=20"`
	EnrollmentDate *string `json:"enrollment_date" validate:"omitempty,isodate"`
	Status         *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (us *UpdateStudent) Validate() error {
	core.CleanStringPtr(us.Name)
	core.CleanStringPtr(us.Email, true /* lower */)
	core.CleanStringPtr(us.Phone)
	core.CleanStringPtr(us.Grade)
	core.CleanStringPtr(us.DateOfBirth)
	core.CleanStringPtr(us.Address)
	core.CleanStringPtr(us.ParentName)
	core.CleanStringPtr(us.ParentPhone)
	core.CleanStringPtr(us.EnrollmentDate)
	core.CleanStringPtr(us.Status)
	return core.Validate.Struct(us)
}

// Apply merges the set fields over s.
func (us UpdateStudent) Apply(s *Student) {
	if us.Name != nil {
		s.Name = *us.Name
	}
	if us.Email != nil {
		s.Email = *us.Email
	}
	if us.Phone != nil {
		s.Phone = *us.Phone
	}
	if us.Grade != nil {
		s.Grade = *us.Grade
	}
	if us.DateOfBirth != nil {
		s.DateOfBirth = *us.DateOfBirth
	}
	if us.Address != nil {
		s.Address = *us.Address
	}
	if us.ParentName != nil {
		s.ParentName = *us.ParentName
	}
	if us.ParentPhone != nil {
		s.ParentPhone = *us.ParentPhone
	}
	if us.EnrollmentDate != nil {
		s.EnrollmentDate = *us.EnrollmentDate
	}
	if us.Status != nil {
		s.Status = *us.Status
	}
}

type QueryFilter struct {
	Search string `query:"search"`
	Grade  string `query:"grade"`
	Status string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Grade == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Grade = core.CleanString(qf.Grade)
	qf.Status = core.CleanString(qf.Status)
}

// Match reports whether s satisfies every set field of the filter.
// Search does a case-insensitive match on one of Name, Email or ParentName.
func (qf QueryFilter) Match(s Student) bool {
	if qf.Search != "" {
		term := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Email), term) &&
			!strings.Contains(strings.ToLower(s.ParentName), term) {
			return false
		}
	}
	if qf.Grade != "" && !strings.EqualFold(s.Grade, qf.Grade) {
		return false
	}
	if qf.Status != "" && !strings.EqualFold(s.Status, qf.Status) {
		return false
	}
	return true
}
