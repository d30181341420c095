package report

import (
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/student"
)

type (
	FeeSummary struct {
		Collected    float64 `json:"collected"`
		Pending      float64 `json:"pending"`
		PaidStudents int     `json:"paid_students"`
	}

	GradeFees struct {
		Grade     string  `json:"grade"`
		Collected float64 `json:"collected"`
		Pending   float64 `json:"pending"`
	}

	PaymentRow struct {
		fee.Payment
		StudentName   string `json:"student_name"`
		FeeStructName string `json:"fee_structure_name"`
	}
)

// FeeTotals sums the paid amounts of Paid payments (collected) and the remaining amounts of
// Pending, Partial and Overdue payments (pending).
func FeeTotals(payments []fee.Payment) FeeSummary {
	var sum FeeSummary
	paid := make(map[string]struct{})
	for _, p := range payments {
		switch {
		case p.Status == fee.StatusPaid:
			sum.Collected += p.PaidAmount
			paid[p.StudentID] = struct{}{}
		case p.IsOutstanding():
			sum.Pending += p.RemainingAmount
		}
	}
	sum.PaidStudents = len(paid)
	return sum
}

// GradeWiseFees splits the totals by student grade, in first-seen grade order.
// Payments of unknown students are skipped.
func GradeWiseFees(students []student.Student, payments []fee.Payment) []GradeFees {
	grades := make(map[string]string, len(students)) // {studentID: grade}
	for _, s := range students {
		grades[s.ID] = s.Grade
	}

	var rows []GradeFees
	index := make(map[string]int)
	for _, p := range payments {
		grade, ok := grades[p.StudentID]
		if !ok {
			continue
		}
		i, ok := index[grade]
		if !ok {
			i = len(rows)
			index[grade] = i
			rows = append(rows, GradeFees{Grade: grade})
		}
		if p.Status == fee.StatusPaid {
			rows[i].Collected += p.PaidAmount
		} else {
			rows[i].Pending += p.RemainingAmount
		}
	}
	if rows == nil {
		rows = []GradeFees{}
	}
	return rows
}

// PaymentHistory lists the payments with the student and fee structure names resolved.
func PaymentHistory(snap Snapshot) []PaymentRow {
	rows := make([]PaymentRow, 0, len(snap.FeePayments))
	for _, p := range snap.FeePayments {
		rows = append(rows, PaymentRow{
			Payment:       p,
			StudentName:   StudentName(snap.Students, p.StudentID),
			FeeStructName: FeeStructureName(snap.FeeStructures, p.FeeStructureID),
		})
	}
	return rows
}
