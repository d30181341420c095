package dummydb

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/student"
)

func openDB(t *testing.T, opts ...Option) *DB {
	db, err := Open(opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func newStudent(name, grade string) student.Student {
	return student.Student{
		Name:           name,
		Email:          name + "@student.com",
		Phone:          "+1 555 010 0000",
		Grade:          grade,
		DateOfBirth:    "2008-01-15",
		Address:        "1 School Road",
		ParentName:     "Parent",
		ParentPhone:    "+1 555 010 0001",
		EnrollmentDate: "2023-09-01",
		Status:         student.StatusActive,
	}
}

func TestStudentRepository_Create(t *testing.T) {
	repo := NewStudentRepository(openDB(t))

	in := newStudent("emma", "Grade 10")
	got, err := repo.CreateStudent(in)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)

	want := in
	want.ID = got.ID
	assert.Equal(t, want, got)

	all, _ := repo.QueryAllStudents()
	assert.Len(t, all, 1)
}

func TestStudentRepository_Update(t *testing.T) {
	repo := NewStudentRepository(openDB(t))
	orig, _ := repo.CreateStudent(newStudent("emma", "Grade 10"))
	_, _ = repo.CreateStudent(newStudent("james", "Grade 9"))

	t.Run("only supplied fields change", func(t *testing.T) {
		got, err := repo.UpdateStudent(orig.ID, student.UpdateStudent{Grade: core.StringPtr("Grade 11")})
		require.NoError(t, err)

		want := orig
		want.Grade = "Grade 11"
		assert.Equal(t, want, got)

		stored, _ := repo.GetStudentByID(orig.ID)
		assert.Equal(t, want, stored)

		all, _ := repo.QueryAllStudents()
		assert.Len(t, all, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.UpdateStudent("nope", student.UpdateStudent{Grade: core.StringPtr("Grade 11")})
		assert.Equal(t, student.ErrNotFound, err)

		all, _ := repo.QueryAllStudents()
		assert.Len(t, all, 2)
	})
}

func TestStudentRepository_Delete(t *testing.T) {
	repo := NewStudentRepository(openDB(t))
	emma, _ := repo.CreateStudent(newStudent("emma", "Grade 10"))
	james, _ := repo.CreateStudent(newStudent("james", "Grade 9"))

	require.NoError(t, repo.DeleteStudentsByID("unknown"))
	all, _ := repo.QueryAllStudents()
	assert.Len(t, all, 2)

	require.NoError(t, repo.DeleteStudentsByID(emma.ID))
	all, _ = repo.QueryAllStudents()
	assert.Equal(t, []student.Student{james}, all)

	_, err := repo.GetStudentByID(emma.ID)
	assert.Equal(t, student.ErrNotFound, err)
}

func TestIDsNeverCollide(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "uuid"},
		{name: "sequential over seed", opts: []Option{WithSeed(), WithIDGenerator(core.SequentialIDs(0))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewStudentRepository(openDB(t, tt.opts...))
			before, _ := repo.QueryAllStudents()

			const n = 50
			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func() {
					defer wg.Done()
					_, _ = repo.CreateStudent(newStudent("s", "Grade 1"))
				}()
			}
			wg.Wait()

			all, _ := repo.QueryAllStudents()
			require.Len(t, all, len(before)+n)
			seen := make(map[string]bool, len(all))
			for _, s := range all {
				if seen[s.ID] {
					t.Fatalf("id %q issued twice", s.ID)
				}
				seen[s.ID] = true
			}
		})
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	repo := NewStudentRepository(openDB(t, WithSeed(), WithIDGenerator(core.SequentialIDs(0))))
	require.NoError(t, repo.DeleteStudentsByID("1", "2"))

	s, err := repo.CreateStudent(newStudent("new", "Grade 1"))
	require.NoError(t, err)
	assert.Equal(t, "3", s.ID)
}

func TestAttendanceRepository(t *testing.T) {
	repo := NewAttendanceRepository(openDB(t))

	first, err := repo.UpsertRecords(attendance.Record{StudentID: "1", ClassID: "1", Date: "2024-01-01", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.UpsertRecords(attendance.Record{StudentID: "1", ClassID: "1", Date: "2024-01-02", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	t.Run("query by date", func(t *testing.T) {
		recs, err := repo.QueryRecordsByDate("2024-01-01")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "1", recs[0].StudentID)

		recs, _ = repo.QueryRecordsByDate("2024-02-01")
		assert.Empty(t, recs)
	})

	t.Run("re-marking updates the existing record", func(t *testing.T) {
		recs, err := repo.UpsertRecords(attendance.Record{
			StudentID: "1", ClassID: "1", Date: "2024-01-01", Status: attendance.StatusLate, Remarks: "bus",
		})
		require.NoError(t, err)
		assert.Equal(t, first[0].ID, recs[0].ID)

		all, _ := repo.QueryAllRecords()
		assert.Len(t, all, 2)

		stored, _ := repo.GetRecordByID(first[0].ID)
		assert.Equal(t, attendance.StatusLate, stored.Status)
		assert.Equal(t, "bus", stored.Remarks)
	})
}

func TestFeeRepository_MarkPaymentsOverdue(t *testing.T) {
	repo := NewFeeRepository(openDB(t))

	mk := func(status string, remaining float64, due string) fee.Payment {
		p, _ := repo.CreatePayment(fee.Payment{StudentID: "1", FeeStructureID: "1", Status: status, RemainingAmount: remaining, DueDate: due})
		return p
	}
	pending := mk(fee.StatusPending, 5000, "2024-01-31")
	partial := mk(fee.StatusPartial, 2500, "2024-01-31")
	notDue := mk(fee.StatusPending, 5000, "2024-03-31")
	paid := mk(fee.StatusPaid, 0, "2024-01-31")

	n, err := repo.MarkPaymentsOverdue("2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	wantStatus := map[string]string{
		pending.ID: fee.StatusOverdue,
		partial.ID: fee.StatusOverdue,
		notDue.ID:  fee.StatusPending,
		paid.ID:    fee.StatusPaid,
	}
	for id, want := range wantStatus {
		p, _ := repo.GetPaymentByID(id)
		assert.Equal(t, want, p.Status, id)
	}

	n, _ = repo.MarkPaymentsOverdue("2024-02-01")
	assert.Equal(t, 0, n)
}

func TestLeaveRepository_SetRequestStatus(t *testing.T) {
	repo := NewLeaveRepository(openDB(t))
	r, _ := repo.CreateRequest(leave.Request{StudentID: "1", Reason: "Medical appointment", FromDate: "2024-03-25", ToDate: "2024-03-25", Status: leave.StatusPending})

	got, err := repo.SetRequestStatus(r.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)

	_, err = repo.SetRequestStatus(r.ID, leave.StatusRejected)
	assert.Equal(t, leave.ErrNotPending, err)

	_, err = repo.SetRequestStatus("nope", leave.StatusRejected)
	assert.Equal(t, leave.ErrNotFound, err)
}

func TestSnapshot(t *testing.T) {
	db := openDB(t, WithSeed())

	snap := db.Snapshot()
	assert.Len(t, snap.Students, 2)
	assert.Len(t, snap.Teachers, 2)
	assert.Len(t, snap.Classes, 1)
	assert.Len(t, snap.Roles, 3)
	assert.Empty(t, snap.Attendance)

	// callers get copies
	snap.Classes[0].EnrolledStudents[0] = "tampered"
	snap.Students[0].Name = "tampered"

	c, err := NewClassRepository(db).GetClassByID("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, c.EnrolledStudents)
	s, _ := NewStudentRepository(db).GetStudentByID("1")
	assert.Equal(t, "Emma Wilson", s.Name)
}

func TestClassRepository_UpdateReplacesRoster(t *testing.T) {
	repo := NewClassRepository(openDB(t, WithSeed()))

	roster := []string{"1", "2"}
	got, err := repo.UpdateClass("1", class.UpdateClass{EnrolledStudents: roster}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got.EnrolledStudents)
	assert.Equal(t, "Mathematics - Grade 10", got.Name)

	roster[0] = "tampered"
	stored, _ := repo.GetClassByID("1")
	assert.Equal(t, []string{"1", "2"}, stored.EnrolledStudents)
}

func TestClassRepository_UpdateCheckFailureKeepsClass(t *testing.T) {
	repo := NewClassRepository(openDB(t, WithSeed()))
	errFull := errors.New("full")

	var seen class.Class
	_, err := repo.UpdateClass("1", class.UpdateClass{EnrolledStudents: []string{"1", "2"}}, func(c class.Class) error {
		seen = c
		return errFull
	})
	assert.Equal(t, errFull, err)
	assert.Equal(t, []string{"1", "2"}, seen.EnrolledStudents)

	stored, _ := repo.GetClassByID("1")
	assert.Equal(t, []string{"1"}, stored.EnrolledStudents)

	_, err = repo.UpdateClass("42", class.UpdateClass{}, func(class.Class) error { return errFull })
	assert.Equal(t, class.ErrNotFound, err)
}
