package report

import (
	"math"

	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/student"
)

type (
	// ClassAttendance rates a class against its roster size: unmarked students count as not present.
	ClassAttendance struct {
		ClassID  string `json:"class_id"`
		Name     string `json:"name"`
		Present  int    `json:"present"`
		Absent   int    `json:"absent"`
		Late     int    `json:"late"`
		Enrolled int    `json:"enrolled"`
		Rate     int    `json:"rate"`
	}

	// StudentAttendance rates a student against the days they were marked on.
	StudentAttendance struct {
		StudentID  string `json:"student_id"`
		Name       string `json:"name"`
		Grade      string `json:"grade"`
		Present    int    `json:"present"`
		Absent     int    `json:"absent"`
		Late       int    `json:"late"`
		Total      int    `json:"total"`
		Percentage int    `json:"percentage"`
	}

	AttendanceSummary struct {
		Average   int `json:"average"`
		Excellent int `json:"excellent"`
		AtRisk    int `json:"at_risk"`
	}
)

// percent returns part/whole as a rounded percentage, 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// AttendanceRate returns the share of Present records among the records of date.
func AttendanceRate(records []attendance.Record, date string) int {
	var present, total int
	for _, r := range records {
		if r.Date != date {
			continue
		}
		total++
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	return percent(present, total)
}

func ClassAttendanceOn(classes []class.Class, records []attendance.Record, date string) []ClassAttendance {
	stats := make([]ClassAttendance, 0, len(classes))
	for _, c := range classes {
		ca := ClassAttendance{ClassID: c.ID, Name: c.Name, Enrolled: len(c.EnrolledStudents)}
		for _, r := range records {
			if r.ClassID != c.ID || r.Date != date {
				continue
			}
			switch r.Status {
			case attendance.StatusPresent:
				ca.Present++
			case attendance.StatusAbsent:
				ca.Absent++
			case attendance.StatusLate:
				ca.Late++
			}
		}
		ca.Rate = percent(ca.Present, ca.Enrolled)
		stats = append(stats, ca)
	}
	return stats
}

func StudentAttendanceOf(students []student.Student, records []attendance.Record) []StudentAttendance {
	stats := make([]StudentAttendance, 0, len(students))
	for _, s := range students {
		sa := StudentAttendance{StudentID: s.ID, Name: s.Name, Grade: s.Grade}
		for _, r := range records {
			if r.StudentID != s.ID {
				continue
			}
			sa.Total++
			switch r.Status {
			case attendance.StatusPresent:
				sa.Present++
			case attendance.StatusAbsent:
				sa.Absent++
			case attendance.StatusLate:
				sa.Late++
			}
		}
		sa.Percentage = percent(sa.Present, sa.Total)
		stats = append(stats, sa)
	}
	return stats
}

// SummarizeAttendance averages the student percentages and counts the students at or above
// excellent, and below atRisk.
func SummarizeAttendance(stats []StudentAttendance, excellent, atRisk int) AttendanceSummary {
	var sum AttendanceSummary
	if len(stats) == 0 {
		return sum
	}
	var total int
	for _, s := range stats {
		total += s.Percentage
		if s.Percentage >= excellent {
			sum.Excellent++
		}
		if s.Percentage < atRisk {
			sum.AtRisk++
		}
	}
	sum.Average = int(math.Round(float64(total) / float64(len(stats))))
	return sum
}
