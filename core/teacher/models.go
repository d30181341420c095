package teacher

import (
	"strings"

	"github.com/su-ri-ya/littlechampions/core"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Teacher struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	JoinDate      string `json:"join_date"`
	Status        string `json:"status"`
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,min=10,max=20"`
	Subject       string `json:"subject" validate:"required,min=2,max=100"`
	Qualification string `json:"qualification" validate:"required,min=2,max=200"`
	Experience    string `json:"experience" validate:"required"`
	JoinDate      string `json:"join_date" validate:"required,isodate"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	nt.Subject = core.CleanString(nt.Subject)
	nt.Qualification = core.CleanString(nt.Qualification)
	nt.Experience = core.CleanString(nt.Experience)
	nt.JoinDate = core.CleanString(nt.JoinDate)
	nt.Status = core.CleanString(nt.Status)
	if nt.Status == "" {
		nt.Status = StatusActive
	}
	return core.Validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an existing Teacher.
type UpdateTeacher struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,min=10,max=20"`
	Subject       *string `json:"subject" validate:"omitempty,min=2,max=100"`
	Qualification *string `json:"qualification" validate:"omitempty,min=2,max=200"`
	Experience    *string `json:"experience" validate:"omitempty,notblank"`
	JoinDate      *string `json:"join_date" validate:"omitempty,isodate"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (ut *UpdateTeacher) Validate() error {
	core.CleanStringPtr(ut.Name)
	core.CleanStringPtr(ut.Email, true /* lower */)
	core.CleanStringPtr(ut.Phone)
	core.CleanStringPtr(ut.Subject)
	core.CleanStringPtr(ut.Qualification)
	core.CleanStringPtr(ut.Experience)
	core.CleanStringPtr(ut.JoinDate)
	core.CleanStringPtr(ut.Status)
	return core.Validate.Struct(ut)
}

// Apply merges the set fields over t.
func (ut UpdateTeacher) Apply(t *Teacher) {
	if ut.Name != nil {
		t.Name = *ut.Name
	}
	if ut.Email != nil {
		t.Email = *ut.Email
	}
	if ut.Phone != nil {
		t.Phone = *ut.Phone
	}
	if ut.Subject != nil {
		t.Subject = *ut.Subject
	}
	if ut.Qualification != nil {
		t.Qualification = *ut.Qualification
	}
	if ut.Experience != nil {
		t.Experience = *ut.Experience
	}
	if ut.JoinDate != nil {
		t.JoinDate = *ut.JoinDate
	}
	if ut.Status != nil {
		t.Status = *ut.Status
	}
}

type QueryFilter struct {
	Search  string `query:"search"`
	Subject string `query:"subject"`
	Status  string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Subject == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Subject = core.CleanString(qf.Subject)
	qf.Status = core.CleanString(qf.Status)
}

// Match reports whether t satisfies every set field of the filter.
// Search does a case-insensitive match on one of Name or Email.
func (qf QueryFilter) Match(t Teacher) bool {
	if qf.Search != "" {
		term := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(t.Name), term) && !strings.Contains(strings.ToLower(t.Email), term) {
			return false
		}
	}
	if qf.Subject != "" && !strings.EqualFold(t.Subject, qf.Subject) {
		return false
	}
	if qf.Status != "" && !strings.EqualFold(t.Status, qf.Status) {
		return false
	}
	return true
}
