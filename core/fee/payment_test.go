package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/su-ri-ya/littlechampions/core/fee"
)

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name          string
		amount, paid  float64
		wantStatus    string
		wantRemaining float64
	}{
		{name: "nothing paid", amount: 5000, paid: 0, wantStatus: fee.StatusPending, wantRemaining: 5000},
		{name: "half paid", amount: 5000, paid: 2500, wantStatus: fee.StatusPartial, wantRemaining: 2500},
		{name: "fully paid", amount: 5000, paid: 5000, wantStatus: fee.StatusPaid, wantRemaining: 0},
		{name: "overpaid", amount: 5000, paid: 6000, wantStatus: fee.StatusPaid, wantRemaining: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, remaining := fee.ComputeStatus(tt.amount, tt.paid)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestPayment_IsOverdue(t *testing.T) {
	const today = "2024-03-15"
	tests := []struct {
		name string
		pmt  fee.Payment
		want bool
	}{
		{name: "pending past due", pmt: fee.Payment{Status: fee.StatusPending, RemainingAmount: 10, DueDate: "2024-03-14"}, want: true},
		{name: "partial past due", pmt: fee.Payment{Status: fee.StatusPartial, RemainingAmount: 10, DueDate: "2024-01-01"}, want: true},
		{name: "due today", pmt: fee.Payment{Status: fee.StatusPending, RemainingAmount: 10, DueDate: today}},
		{name: "paid", pmt: fee.Payment{Status: fee.StatusPaid, DueDate: "2024-01-01"}},
		{name: "already overdue", pmt: fee.Payment{Status: fee.StatusOverdue, RemainingAmount: 10, DueDate: "2024-01-01"}},
		{name: "nothing remaining", pmt: fee.Payment{Status: fee.StatusPartial, DueDate: "2024-01-01"}},
		{name: "no due date", pmt: fee.Payment{Status: fee.StatusPending, RemainingAmount: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pmt.IsOverdue(today))
		})
	}
}
