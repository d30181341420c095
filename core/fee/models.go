package fee

import (
	"strings"

	"github.com/su-ri-ya/littlechampions/core"
)

// Frequencies
const (
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyAnnually  = "Annually"
	FrequencyOneTime   = "One-time"
)

// Payment statuses
const (
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusPending = "Pending"
	StatusOverdue = "Overdue"
)

// Payment methods
const (
	MethodCash         = "Cash"
	MethodCard         = "Card"
	MethodBankTransfer = "Bank Transfer"
	MethodOnline       = "Online"
)

var PaymentMethods = []string{MethodCash, MethodCard, MethodBankTransfer, MethodOnline}

// Structure defines an amount due, at some frequency, by the students of a grade.
type Structure struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Grade       string  `json:"grade"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description,omitempty"`
}

type NewStructure struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Grade       string  `json:"grade" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Frequency   string  `json:"frequency" validate:"required,oneof=Monthly Quarterly Annually One-time"`
	DueDate     string  `json:"due_date" validate:"required,isodate"`
	Description string  `json:"description" validate:"max=500"`
}

func (ns *NewStructure) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Grade = core.CleanString(ns.Grade)
	ns.Frequency = core.CleanString(ns.Frequency)
	ns.DueDate = core.CleanString(ns.DueDate)
	ns.Description = core.CleanString(ns.Description)
	return core.Validate.Struct(ns)
}

type UpdateStructure struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,max=100"`
	Grade       *string  `json:"grade" validate:"omitempty,notblank"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Frequency   *string  `json:"frequency" validate:"omitempty,oneof=Monthly Quarterly Annually One-time"`
	DueDate     *string  `json:"due_date" validate:"omitempty,isodate"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

func (us *UpdateStructure) Validate() error {
	core.CleanStringPtr(us.Name)
	core.CleanStringPtr(us.Grade)
	core.CleanStringPtr(us.Frequency)
	core.CleanStringPtr(us.DueDate)
	core.CleanStringPtr(us.Description)
	return core.Validate.Struct(us)
}

// Apply merges the set fields over s.
func (us UpdateStructure) Apply(s *Structure) {
	if us.Name != nil {
		s.Name = *us.Name
	}
	if us.Grade != nil {
		s.Grade = *us.Grade
	}
	if us.Amount != nil {
		s.Amount = *us.Amount
	}
	if us.Frequency != nil {
		s.Frequency = *us.Frequency
	}
	if us.DueDate != nil {
		s.DueDate = *us.DueDate
	}
	if us.Description != nil {
		s.Description = *us.Description
	}
}

type StructureFilter struct {
	Grade     string `query:"grade"`
	Frequency string `query:"frequency"`
}

func (sf *StructureFilter) IsEmpty() bool { return sf.Grade == "" && sf.Frequency == "" }

func (sf *StructureFilter) Clean() {
	sf.Grade = core.CleanString(sf.Grade)
	sf.Frequency = core.CleanString(sf.Frequency)
}

func (sf StructureFilter) Match(s Structure) bool {
	return (sf.Grade == "" || strings.EqualFold(s.Grade, sf.Grade)) &&
		(sf.Frequency == "" || strings.EqualFold(s.Frequency, sf.Frequency))
}
