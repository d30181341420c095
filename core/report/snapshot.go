package report

import (
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

// Snapshot is a consistent copy of every collection of the store.
type Snapshot struct {
	Students      []student.Student
	Teachers      []teacher.Teacher
	Classes       []class.Class
	Attendance    []attendance.Record
	FeeStructures []fee.Structure
	FeePayments   []fee.Payment
	Roles         []role.Role
	LeaveRequests []leave.Request
}

// Snapshotter is implemented by stores able to hand out a Snapshot.
type Snapshotter interface {
	Snapshot() Snapshot
}

const unknown = "Unknown"

// StudentName resolves a student id, "Unknown" when it does not.
func StudentName(students []student.Student, id string) string {
	for _, s := range students {
		if s.ID == id {
			return s.Name
		}
	}
	return unknown
}

// TeacherName resolves a teacher id, "Unknown" when it does not.
func TeacherName(teachers []teacher.Teacher, id string) string {
	for _, t := range teachers {
		if t.ID == id {
			return t.Name
		}
	}
	return unknown
}

// FeeStructureName resolves a fee structure id, "Unknown" when it does not.
func FeeStructureName(structures []fee.Structure, id string) string {
	for _, s := range structures {
		if s.ID == id {
			return s.Name
		}
	}
	return unknown
}
