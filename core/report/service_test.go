package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
	"github.com/su-ri-ya/littlechampions/tests"
)

func TestService(t *testing.T) {
	db := testutil.OpenDB(t, dummydb.WithSeed())
	svc := report.NewService(db, 90, 75)

	t.Run("dashboard without attendance", func(t *testing.T) {
		assert.Equal(t, report.DashboardStats{
			Date:           "2024-03-15",
			Students:       2,
			ActiveStudents: 2,
			Teachers:       2,
			Classes:        1,
		}, svc.Dashboard("2024-03-15"))
	})

	_, err := dummydb.NewAttendanceRepository(db).UpsertRecords(
		attendance.Record{StudentID: "1", ClassID: "1", Date: "2024-03-15", Status: attendance.StatusPresent},
		attendance.Record{StudentID: "2", ClassID: "1", Date: "2024-03-15", Status: attendance.StatusAbsent},
	)
	require.NoError(t, err)
	_, err = dummydb.NewLeaveRepository(db).CreateRequest(leave.Request{
		StudentID: "2", Reason: "Medical appointment", FromDate: "2024-03-15", ToDate: "2024-03-15", Status: leave.StatusPending,
	})
	require.NoError(t, err)

	t.Run("dashboard", func(t *testing.T) {
		got := svc.Dashboard("2024-03-15")
		assert.Equal(t, 50, got.AttendanceRate)
		assert.Equal(t, 1, got.PendingLeaves)
	})

	t.Run("attendance", func(t *testing.T) {
		got := svc.Attendance("2024-03-15")
		assert.Equal(t, 50, got.Rate)
		assert.Equal(t, report.AttendanceSummary{Average: 50, Excellent: 1, AtRisk: 1}, got.Summary)
		assert.Len(t, got.Students, 2)
	})

	t.Run("classes", func(t *testing.T) {
		got := svc.Classes("2024-03-15")
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Present)
		assert.Equal(t, 1, got[0].Absent)
		assert.Equal(t, 100, got[0].Rate, "student 2 is not on the roster")
	})

	t.Run("students", func(t *testing.T) {
		got := svc.Students()
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, []report.Count{{Key: "Grade 10", Count: 1}, {Key: "Grade 9", Count: 1}}, got.Grades)
	})

	t.Run("fees without payments", func(t *testing.T) {
		got := svc.Fees()
		assert.Equal(t, report.FeeSummary{}, got.FeeSummary)
		assert.Equal(t, 2, got.TotalStudents)
		assert.Empty(t, got.Grades)
		assert.Empty(t, got.Payments)
	})

	t.Run("teachers", func(t *testing.T) {
		got := svc.Teachers()
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Classes)
		assert.Equal(t, 1, got[0].Students)
		assert.Zero(t, got[1].Classes)

		entries := svc.Timetable()
		require.Len(t, entries, 1)
		assert.Equal(t, "Dr. Sarah Johnson", entries[0].TeacherName)
	})
}
