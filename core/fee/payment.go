package fee

import (
	"math"

	"github.com/su-ri-ya/littlechampions/core"
)

// Payment is money collected, possibly partially, against a Structure for a student.
// Amount, RemainingAmount, Status and DueDate are computed from the structure when the
// payment is submitted and are not re-derived when the structure changes later.
type Payment struct {
	ID              string  `json:"id"`
	StudentID       string  `json:"student_id"`
	FeeStructureID  string  `json:"fee_structure_id"`
	Amount          float64 `json:"amount"`
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"payment_method"`
	TransactionID   string  `json:"transaction_id,omitempty"`
	Remarks         string  `json:"remarks,omitempty"`
	PaymentDate     string  `json:"payment_date"`
	DueDate         string  `json:"due_date"`
}

// IsOutstanding reports whether some money is still expected.
func (p Payment) IsOutstanding() bool {
	switch p.Status {
	case StatusPending, StatusPartial, StatusOverdue:
		return true
	}
	return false
}

// IsOverdue reports whether a Pending or Partial payment is past its due date with money remaining.
func (p Payment) IsOverdue(today string) bool {
	if p.Status != StatusPending && p.Status != StatusPartial {
		return false
	}
	return p.RemainingAmount > 0 && p.DueDate != "" && p.DueDate < today
}

// ComputeStatus derives the status and the remaining amount of a payment of paid against amount.
func ComputeStatus(amount, paid float64) (status string, remaining float64) {
	remaining = math.Max(0, amount-paid)
	switch {
	case paid >= amount:
		status = StatusPaid
	case paid > 0:
		status = StatusPartial
	default:
		status = StatusPending
	}
	return status, remaining
}

type NewPayment struct {
	StudentID      string  `json:"student_id" validate:"required"`
	FeeStructureID string  `json:"fee_structure_id" validate:"required"`
	PaidAmount     float64 `json:"paid_amount" validate:"gte=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required,paymentmethod"`
	TransactionID  string  `json:"transaction_id" validate:"max=100"`
	Remarks        string  `json:"remarks" validate:"max=500"`
}

func (np *NewPayment) Validate() error {
	np.StudentID = core.CleanString(np.StudentID)
	np.FeeStructureID = core.CleanString(np.FeeStructureID)
	np.PaymentMethod = core.CleanString(np.PaymentMethod)
	np.TransactionID = core.CleanString(np.TransactionID)
	np.Remarks = core.CleanString(np.Remarks)
	return core.Validate.Struct(np)
}

// UpdatePayment defines what information may be provided to modify an existing Payment.
// The computed fields are derived by the Service, never supplied by the client.
type UpdatePayment struct {
	FeeStructureID *string  `json:"fee_structure_id" validate:"omitempty,notblank"`
	PaidAmount     *float64 `json:"paid_amount" validate:"omitempty,gte=0"`
	PaymentMethod  *string  `json:"payment_method" validate:"omitempty,paymentmethod"`
	TransactionID  *string  `json:"transaction_id" validate:"omitempty,max=100"`
	Remarks        *string  `json:"remarks" validate:"omitempty,max=500"`
}

func (up *UpdatePayment) Validate() error {
	core.CleanStringPtr(up.FeeStructureID)
	core.CleanStringPtr(up.PaymentMethod)
	core.CleanStringPtr(up.TransactionID)
	core.CleanStringPtr(up.Remarks)
	return core.Validate.Struct(up)
}

// Apply merges the set fields over p.
func (up UpdatePayment) Apply(p *Payment) {
	if up.FeeStructureID != nil {
		p.FeeStructureID = *up.FeeStructureID
	}
	if up.PaidAmount != nil {
		p.PaidAmount = *up.PaidAmount
	}
	if up.PaymentMethod != nil {
		p.PaymentMethod = *up.PaymentMethod
	}
	if up.TransactionID != nil {
		p.TransactionID = *up.TransactionID
	}
	if up.Remarks != nil {
		p.Remarks = *up.Remarks
	}
}

type PaymentFilter struct {
	StudentID      string `query:"student_id"`
	FeeStructureID string `query:"fee_structure_id"`
	Status         string `query:"status"`
}

func (pf *PaymentFilter) IsEmpty() bool {
	return pf.StudentID == "" && pf.FeeStructureID == "" && pf.Status == ""
}

func (pf *PaymentFilter) Clean() {
	pf.StudentID = core.CleanString(pf.StudentID)
	pf.FeeStructureID = core.CleanString(pf.FeeStructureID)
	pf.Status = core.CleanString(pf.Status)
}

func (pf PaymentFilter) Match(p Payment) bool {
	return (pf.StudentID == "" || p.StudentID == pf.StudentID) &&
		(pf.FeeStructureID == "" || p.FeeStructureID == pf.FeeStructureID) &&
		(pf.Status == "" || p.Status == pf.Status)
}
