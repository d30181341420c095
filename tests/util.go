package testutil

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
	"github.com/su-ri-ya/littlechampions/services/logger"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
)

// OpenDB opens an empty store issuing sequential ids, unless opts say otherwise.
func OpenDB(t *testing.T, opts ...dummydb.Option) *dummydb.DB {
	t.Helper()
	opts = append([]dummydb.Option{dummydb.WithIDGenerator(core.SequentialIDs(100))}, opts...)
	db, err := dummydb.Open(opts...)
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "."))
}

func CreateStudent(t *testing.T, repo student.Repository, name, grade string, dob ...string) student.Student {
	t.Helper()
	dateOfBirth := "2008-01-15"
	if len(dob) > 0 {
		dateOfBirth = dob[0]
	}
	s, err := repo.CreateStudent(student.Student{
		Name:           name,
		Email:          slug(name) + "@student.com",
		Phone:          "+1 555 010 0000",
		Grade:          grade,
		DateOfBirth:    dateOfBirth,
		Address:        "1 School Road",
		ParentName:     "Parent of " + name,
		ParentPhone:    "+1 555 010 0001",
		EnrollmentDate: "2023-09-01",
		Status:         student.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func CreateTeacher(t *testing.T, repo teacher.Repository, name, subject string) teacher.Teacher {
	t.Helper()
	tchr, err := repo.CreateTeacher(teacher.Teacher{
		Name:          name,
		Email:         slug(name) + "@school.com",
		Phone:         "+1 555 020 0000",
		Subject:       subject,
		Qualification: "MSc in " + subject,
		Experience:    "5 years",
		JoinDate:      "2018-09-01",
		Status:        teacher.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tchr
}

func CreateClass(t *testing.T, repo class.Repository, name, teacherID string, capacity int, enrolled ...string) class.Class {
	t.Helper()
	if enrolled == nil {
		enrolled = []string{}
	}
	c, err := repo.CreateClass(class.Class{
		Name:             name,
		Subject:          strings.SplitN(name, " ", 2)[0],
		TeacherID:        teacherID,
		Grade:            "Grade 10",
		Room:             "Room 101",
		Schedule:         "Mon, Wed - 10:00 AM",
		Capacity:         capacity,
		EnrolledStudents: enrolled,
	})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return c
}

func CreateStructure(t *testing.T, repo fee.Repository, name, grade string, amount float64, dueDate string) fee.Structure {
	t.Helper()
	s, err := repo.CreateStructure(fee.Structure{
		Name:      name,
		Grade:     grade,
		Amount:    amount,
		Frequency: fee.FrequencyAnnually,
		DueDate:   dueDate,
	})
	if err != nil {
		t.Fatalf("CreateStructure() failed: %v", err)
	}
	return s
}

func CreatePayment(t *testing.T, repo fee.Repository, studentID string, struc fee.Structure, paid float64) fee.Payment {
	t.Helper()
	status, remaining := fee.ComputeStatus(struc.Amount, paid)
	p, err := repo.CreatePayment(fee.Payment{
		StudentID:       studentID,
		FeeStructureID:  struc.ID,
		Amount:          struc.Amount,
		PaidAmount:      paid,
		RemainingAmount: remaining,
		Status:          status,
		PaymentMethod:   fee.MethodCash,
		PaymentDate:     "2024-01-10",
		DueDate:         struc.DueDate,
	})
	if err != nil {
		t.Fatalf("CreatePayment() failed: %v", err)
	}
	return p
}

func CreateRole(t *testing.T, repo role.Repository, name string, perms ...string) role.Role {
	t.Helper()
	if perms == nil {
		perms = []string{}
	}
	r, err := repo.CreateRole(role.Role{
		Name:        name,
		Description: fmt.Sprintf("%s role", name),
		Permissions: perms,
	})
	if err != nil {
		t.Fatalf("CreateRole() failed: %v", err)
	}
	return r
}

// NewConfig returns the configuration used by the tests.
func NewConfig() *core.Config {
	return &core.Config{
		Env:                 "TEST",
		Debug:               false,
		TestMode:            true,
		AppName:             "Little Champions",
		Build:               "test",
		SecretKey:           "test-secret-key",
		DefaultFromEmail:    "noreply@littlechampions.test",
		Currency:            "USD",
		ImportMaxRows:       1000,
		ImportMaxUploadSize: "64K",
		ExcellentAttendance: 90,
		AtRiskAttendance:    75,
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
	}
}

// NewLogger returns a silent logger that reports nothing.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}
