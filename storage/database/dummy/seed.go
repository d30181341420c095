package dummydb

import (
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

// Seeded role ids
const (
	AdministratorRoleID = "1"
	TeacherRoleID       = "2"
	AccountantRoleID    = "3"
)

var (
	seedStudents = []student.Student{
		{
			ID:             "1",
			Name:           "Emma Wilson",
			Email:          "emma.w@student.com",
			Phone:          "+1 234 567 8901",
			Grade:          "Grade 10",
			DateOfBirth:    "2008-05-15",
			Address:        "123 Main St, City",
			ParentName:     "John Wilson",
			ParentPhone:    "+1 234 567 8900",
			EnrollmentDate: "2023-09-01",
			Status:         student.StatusActive,
		},
		{
			ID:             "2",
			Name:           "James Smith",
			Email:          "james.s@student.com",
			Phone:          "+1 234 567 8902",
			Grade:          "Grade 9",
			DateOfBirth:    "2009-08-22",
			Address:        "456 Oak Ave, City",
			ParentName:     "Mary Smith",
			ParentPhone:    "+1 234 567 8903",
			EnrollmentDate: "2023-09-01",
			Status:         student.StatusActive,
		},
	}

	seedTeachers = []teacher.Teacher{
		{
			ID:            "1",
			Name:          "Dr. Sarah Johnson",
			Email:         "sarah.j@school.com",
			Phone:         "+1 234 567 9001",
			Subject:       "Mathematics",
			Qualification: "PhD in Mathematics",
			Experience:    "10 years",
			JoinDate:      "2014-08-15",
			Status:        teacher.StatusActive,
		},
		{
			ID:            "2",
			Name:          "Prof. Michael Chen",
			Email:         "michael.c@school.com",
			Phone:         "+1 234 567 9002",
			Subject:       "Physics",
			Qualification: "MSc in Physics",
			Experience:    "8 years",
			JoinDate:      "2016-09-01",
			Status:        teacher.StatusActive,
		},
	}

	seedClasses = []class.Class{
		{
			ID:               "1",
			Name:             "Mathematics - Grade 10",
			Subject:          "Mathematics",
			TeacherID:        "1",
			Grade:            "Grade 10",
			Room:             "Room 201",
			Schedule:         "Mon, Wed, Fri - 9:00 AM",
			Capacity:         35,
			EnrolledStudents: []string{"1"},
		},
	}
)

func seedRoles() []role.Role {
	return []role.Role{
		{
			ID:          AdministratorRoleID,
			Name:        "Administrator",
			Description: "Full access to every part of the school",
			Permissions: role.AllPermissions(),
		},
		{
			ID:          TeacherRoleID,
			Name:        "Teacher",
			Description: "Manages classes and attendance",
			Permissions: []string{
				role.StudentsView, role.TeachersView, role.ClassesView, role.ClassesEdit,
				role.AttendanceView, role.AttendanceMark,
			},
		},
		{
			ID:          AccountantRoleID,
			Name:        "Accountant",
			Description: "Manages fee structures and collects payments",
			Permissions: []string{
				role.StudentsView, role.FeesView, role.FeesManage, role.FeesCollect, role.SettingsView,
			},
		},
	}
}

// seed loads the sample data with fixed ids. It runs before the store is shared.
func seed(db *DB) {
	for _, s := range seedStudents {
		db.student.insert(s)
	}
	for _, t := range seedTeachers {
		db.teacher.insert(t)
	}
	for _, c := range seedClasses {
		db.class.insert(c)
	}
	for _, r := range seedRoles() {
		db.role.insert(r)
	}
}
