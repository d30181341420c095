package class

import (
	"strings"

	"github.com/su-ri-ya/littlechampions/core"
)

type Class struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Subject          string   `json:"subject"`
	TeacherID        string   `json:"teacher_id"`
	Grade            string   `json:"grade"`
	Room             string   `json:"room"`
	Schedule         string   `json:"schedule"`
	Capacity         int      `json:"capacity"`
	EnrolledStudents []string `json:"enrolled_students"`
}

// Copy returns c with its own roster slice.
func (c Class) Copy() Class {
	c.EnrolledStudents = append(make([]string, 0, len(c.EnrolledStudents)), c.EnrolledStudents...)
	return c
}

// IsEnrolled reports whether the student is on the roster.
func (c Class) IsEnrolled(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	Subject          string   `json:"subject" validate:"required,min=2,max=100"`
	TeacherID        string   `json:"teacher_id" validate:"required"`
	Grade            string   `json:"grade" validate:"required"`
	Room             string   `json:"room" validate:"required,max=50"`
	Schedule         string   `json:"schedule" validate:"required,min=5,max=200"`
	Capacity         int      `json:"capacity" validate:"required,min=1,max=100"`
	EnrolledStudents []string `json:"enrolled_students" validate:"omitempty,unique,dive,required"`
}

func (nc *NewClass) clean() {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	nc.TeacherID = core.CleanString(nc.TeacherID)
	nc.Grade = core.CleanString(nc.Grade)
	nc.Room = core.CleanString(nc.Room)
	nc.Schedule = core.CleanString(nc.Schedule)
	for i, id := range nc.EnrolledStudents {
		nc.EnrolledStudents[i] = core.CleanString(id)
	}
	if nc.EnrolledStudents == nil {
		nc.EnrolledStudents = []string{}
	}
}

// UpdateClass defines what information may be provided to modify an existing Class.
type UpdateClass struct {
	Name             *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Subject          *string  `json:"subject" validate:"omitempty,min=2,max=100"`
	TeacherID        *string  `json:"teacher_id" validate:"omitempty,notblank"`
	Grade            *string  `json:"grade" validate:"omitempty,notblank"`
	Room             *string  `json:"room" validate:"omitempty,notblank,max=50"`
	Schedule         *string  `json:"schedule" validate:"omitempty,min=5,max=200"`
	Capacity         *int     `json:"capacity" validate:"omitempty,min=1,max=100"`
	EnrolledStudents []string `json:"enrolled_students" validate:"omitempty,unique,dive,required"`
}

func (uc *UpdateClass) clean() {
	core.CleanStringPtr(uc.Name)
	core.CleanStringPtr(uc.Subject)
	core.CleanStringPtr(uc.TeacherID)
	core.CleanStringPtr(uc.Grade)
	core.CleanStringPtr(uc.Room)
	core.CleanStringPtr(uc.Schedule)
	for i, id := range uc.EnrolledStudents {
		uc.EnrolledStudents[i] = core.CleanString(id)
	}
}

// Apply merges the set fields over c. A non-nil roster replaces the current one.
func (uc UpdateClass) Apply(c *Class) {
	if uc.Name != nil {
		c.Name = *uc.Name
	}
	if uc.Subject != nil {
		c.Subject = *uc.Subject
	}
	if uc.TeacherID != nil {
		c.TeacherID = *uc.TeacherID
	}
	if uc.Grade != nil {
		c.Grade = *uc.Grade
	}
	if uc.Room != nil {
		c.Room = *uc.Room
	}
	if uc.Schedule != nil {
		c.Schedule = *uc.Schedule
	}
	if uc.Capacity != nil {
		c.Capacity = *uc.Capacity
	}
	if uc.EnrolledStudents != nil {
		c.EnrolledStudents = append(make([]string, 0, len(uc.EnrolledStudents)), uc.EnrolledStudents...)
	}
}

type QueryFilter struct {
	Search    string `query:"search"`
	TeacherID string `query:"teacher_id"`
	Grade     string `query:"grade"`
	StudentID string `query:"student_id"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.TeacherID == "" && qf.Grade == "" && qf.StudentID == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.TeacherID = core.CleanString(qf.TeacherID)
	qf.Grade = core.CleanString(qf.Grade)
	qf.StudentID = core.CleanString(qf.StudentID)
}

// Match reports whether c satisfies every set field of the filter.
// Search does a case-insensitive match on one of Name, Subject or Room.
func (qf QueryFilter) Match(c Class) bool {
	if qf.Search != "" {
		term := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Subject), term) &&
			!strings.Contains(strings.ToLower(c.Room), term) {
			return false
		}
	}
	if qf.TeacherID != "" && c.TeacherID != qf.TeacherID {
		return false
	}
	if qf.Grade != "" && !strings.EqualFold(c.Grade, qf.Grade) {
		return false
	}
	if qf.StudentID != "" && !c.IsEnrolled(qf.StudentID) {
		return false
	}
	return true
}
