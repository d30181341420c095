package report

type (
	AttendanceReport struct {
		Date     string              `json:"date"`
		Rate     int                 `json:"rate"`
		Summary  AttendanceSummary   `json:"summary"`
		Students []StudentAttendance `json:"students"`
	}

	StudentReport struct {
		Total    int     `json:"total"`
		Grades   []Count `json:"grades"`
		Statuses []Count `json:"statuses"`
	}

	FeeReport struct {
		FeeSummary
		TotalStudents int          `json:"total_students"`
		Grades        []GradeFees  `json:"grades"`
		Payments      []PaymentRow `json:"payments"`
	}

	// Service computes the reports from a fresh snapshot of the store on every call.
	Service struct {
		store     Snapshotter
		excellent int
		atRisk    int
	}
)

func NewService(store Snapshotter, excellentThreshold, atRiskThreshold int) *Service {
	return &Service{store: store, excellent: excellentThreshold, atRisk: atRiskThreshold}
}

func (svc *Service) Dashboard(today string) DashboardStats {
	return Dashboard(svc.store.Snapshot(), today)
}

func (svc *Service) Attendance(date string) AttendanceReport {
	snap := svc.store.Snapshot()
	stats := StudentAttendanceOf(snap.Students, snap.Attendance)
	return AttendanceReport{
		Date:     date,
		Rate:     AttendanceRate(snap.Attendance, date),
		Summary:  SummarizeAttendance(stats, svc.excellent, svc.atRisk),
		Students: stats,
	}
}

func (svc *Service) Classes(date string) []ClassAttendance {
	snap := svc.store.Snapshot()
	return ClassAttendanceOn(snap.Classes, snap.Attendance, date)
}

func (svc *Service) Students() StudentReport {
	snap := svc.store.Snapshot()
	return StudentReport{
		Total:    len(snap.Students),
		Grades:   GradeDistribution(snap.Students),
		Statuses: StatusDistribution(snap.Students),
	}
}

func (svc *Service) Fees() FeeReport {
	snap := svc.store.Snapshot()
	return FeeReport{
		FeeSummary:    FeeTotals(snap.FeePayments),
		TotalStudents: len(snap.Students),
		Grades:        GradeWiseFees(snap.Students, snap.FeePayments),
		Payments:      PaymentHistory(snap),
	}
}

func (svc *Service) Teachers() []Workload {
	snap := svc.store.Snapshot()
	return TeacherWorkload(snap.Teachers, snap.Classes)
}

func (svc *Service) Timetable() []TimetableEntry {
	snap := svc.store.Snapshot()
	return Timetable(snap.Classes, snap.Teachers)
}
