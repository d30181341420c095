package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

var (
	students = []student.Student{
		{ID: "1", Name: "Emma Wilson", Grade: "Grade 10", Status: student.StatusActive},
		{ID: "2", Name: "James Smith", Grade: "Grade 9", Status: student.StatusActive},
		{ID: "3", Name: "Olivia Brown", Grade: "Grade 10", Status: student.StatusInactive},
	}
	teachers = []teacher.Teacher{
		{ID: "1", Name: "Dr. Sarah Johnson", Subject: "Mathematics"},
		{ID: "2", Name: "Prof. Michael Chen", Subject: "Physics"},
	}
	classes = []class.Class{
		{ID: "1", Name: "Mathematics - Grade 10", TeacherID: "1", EnrolledStudents: []string{"1", "3"}},
		{ID: "2", Name: "Physics - Grade 9", TeacherID: "2", EnrolledStudents: []string{"2"}},
		{ID: "3", Name: "Algebra - Grade 10", TeacherID: "1", EnrolledStudents: []string{"1", "2", "3"}},
		{ID: "4", Name: "Orphan", TeacherID: "42", EnrolledStudents: []string{}},
	}
)

func rec(studentID, classID, date, status string) attendance.Record {
	return attendance.Record{StudentID: studentID, ClassID: classID, Date: date, Status: status}
}

func TestAttendanceRate(t *testing.T) {
	records := []attendance.Record{
		rec("1", "1", "2024-03-15", attendance.StatusPresent),
		rec("3", "1", "2024-03-15", attendance.StatusLate),
		rec("2", "2", "2024-03-15", attendance.StatusPresent),
		rec("2", "2", "2024-03-14", attendance.StatusAbsent),
	}
	tests := []struct {
		name    string
		records []attendance.Record
		date    string
		want    int
	}{
		{name: "no records", date: "2024-03-15", want: 0},
		{name: "late is not present", records: records, date: "2024-03-15", want: 67},
		{name: "other day", records: records, date: "2024-03-14", want: 0},
		{name: "nothing marked that day", records: records, date: "2024-03-16", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.AttendanceRate(tt.records, tt.date))
		})
	}
}

func TestClassAttendanceOn(t *testing.T) {
	records := []attendance.Record{
		rec("1", "1", "2024-03-15", attendance.StatusPresent),
		rec("3", "1", "2024-03-14", attendance.StatusPresent),
		rec("2", "2", "2024-03-15", attendance.StatusAbsent),
	}
	got := report.ClassAttendanceOn(classes, records, "2024-03-15")

	assert.Equal(t, []report.ClassAttendance{
		{ClassID: "1", Name: "Mathematics - Grade 10", Present: 1, Enrolled: 2, Rate: 50},
		{ClassID: "2", Name: "Physics - Grade 9", Absent: 1, Enrolled: 1, Rate: 0},
		{ClassID: "3", Name: "Algebra - Grade 10", Enrolled: 3, Rate: 0},
		{ClassID: "4", Name: "Orphan", Rate: 0},
	}, got)
}

func TestStudentAttendance(t *testing.T) {
	records := []attendance.Record{
		rec("1", "1", "2024-03-13", attendance.StatusPresent),
		rec("1", "1", "2024-03-14", attendance.StatusPresent),
		rec("1", "1", "2024-03-15", attendance.StatusPresent),
		rec("2", "2", "2024-03-14", attendance.StatusPresent),
		rec("2", "2", "2024-03-15", attendance.StatusLate),
		rec("2", "2", "2024-03-16", attendance.StatusAbsent),
	}
	stats := report.StudentAttendanceOf(students, records)

	assert.Equal(t, []report.StudentAttendance{
		{StudentID: "1", Name: "Emma Wilson", Grade: "Grade 10", Present: 3, Total: 3, Percentage: 100},
		{StudentID: "2", Name: "James Smith", Grade: "Grade 9", Present: 1, Late: 1, Absent: 1, Total: 3, Percentage: 33},
		{StudentID: "3", Name: "Olivia Brown", Grade: "Grade 10"},
	}, stats)

	sum := report.SummarizeAttendance(stats, 90, 75)
	assert.Equal(t, report.AttendanceSummary{Average: 44, Excellent: 1, AtRisk: 2}, sum)

	assert.Equal(t, report.AttendanceSummary{}, report.SummarizeAttendance(nil, 90, 75))
}

func TestDistributions(t *testing.T) {
	twoStudents := students[:2]
	assert.Equal(t, []report.Count{{Key: "Grade 10", Count: 1}, {Key: "Grade 9", Count: 1}}, report.GradeDistribution(twoStudents))

	assert.Equal(t, []report.Count{{Key: "Grade 10", Count: 2}, {Key: "Grade 9", Count: 1}}, report.GradeDistribution(students))
	assert.Equal(t, []report.Count{
		{Key: student.StatusActive, Count: 2},
		{Key: student.StatusInactive, Count: 1},
	}, report.StatusDistribution(students))

	assert.Equal(t, []report.Count{}, report.GradeDistribution(nil))
}

func TestFees(t *testing.T) {
	structures := []fee.Structure{{ID: "1", Name: "Tuition Fee"}}
	payments := []fee.Payment{
		{ID: "1", StudentID: "1", FeeStructureID: "1", PaidAmount: 5000, Status: fee.StatusPaid},
		{ID: "2", StudentID: "1", FeeStructureID: "1", PaidAmount: 1000, Status: fee.StatusPaid},
		{ID: "3", StudentID: "2", FeeStructureID: "1", PaidAmount: 2500, RemainingAmount: 2500, Status: fee.StatusPartial},
		{ID: "4", StudentID: "3", FeeStructureID: "1", RemainingAmount: 300, Status: fee.StatusOverdue},
		{ID: "5", StudentID: "42", FeeStructureID: "7", RemainingAmount: 100, Status: fee.StatusPending},
	}

	t.Run("totals", func(t *testing.T) {
		assert.Equal(t, report.FeeSummary{Collected: 6000, Pending: 2900, PaidStudents: 1}, report.FeeTotals(payments))
		assert.Equal(t, report.FeeSummary{}, report.FeeTotals(nil))
	})

	t.Run("grade wise", func(t *testing.T) {
		assert.Equal(t, []report.GradeFees{
			{Grade: "Grade 10", Collected: 6000, Pending: 300},
			{Grade: "Grade 9", Pending: 2500},
		}, report.GradeWiseFees(students, payments))
	})

	t.Run("history resolves names", func(t *testing.T) {
		rows := report.PaymentHistory(report.Snapshot{
			Students:      students,
			FeeStructures: structures,
			FeePayments:   payments,
		})
		assert.Len(t, rows, 5)
		assert.Equal(t, "Emma Wilson", rows[0].StudentName)
		assert.Equal(t, "Tuition Fee", rows[0].FeeStructName)
		assert.Equal(t, "Unknown", rows[4].StudentName)
		assert.Equal(t, "Unknown", rows[4].FeeStructName)
	})
}

func TestTeachers(t *testing.T) {
	assert.Equal(t, []report.Workload{
		{TeacherID: "1", Name: "Dr. Sarah Johnson", Subject: "Mathematics", Classes: 2, Students: 5},
		{TeacherID: "2", Name: "Prof. Michael Chen", Subject: "Physics", Classes: 1, Students: 1},
	}, report.TeacherWorkload(teachers, classes))

	entries := report.Timetable(classes, teachers)
	assert.Len(t, entries, 4)
	assert.Equal(t, "Dr. Sarah Johnson", entries[0].TeacherName)
	assert.Equal(t, "Unknown", entries[3].TeacherName)
}
