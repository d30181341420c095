package report

import "github.com/su-ri-ya/littlechampions/core/leave"

type DashboardStats struct {
	Date           string `json:"date"`
	Students       int    `json:"students"`
	ActiveStudents int    `json:"active_students"`
	Teachers       int    `json:"teachers"`
	Classes        int    `json:"classes"`
	AttendanceRate int    `json:"attendance_rate"`
	PendingLeaves  int    `json:"pending_leaves"`
}

func Dashboard(snap Snapshot, today string) DashboardStats {
	stats := DashboardStats{
		Date:           today,
		Students:       len(snap.Students),
		Teachers:       len(snap.Teachers),
		Classes:        len(snap.Classes),
		AttendanceRate: AttendanceRate(snap.Attendance, today),
	}
	for _, s := range snap.Students {
		if s.IsActive() {
			stats.ActiveStudents++
		}
	}
	for _, r := range snap.LeaveRequests {
		if r.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}
	return stats
}
