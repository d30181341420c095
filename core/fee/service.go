package fee

import (
	"errors"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/student"
)

var (
	// errors
	ErrStructureNotFound = errors.New("fee structure not found")
	ErrPaymentNotFound   = errors.New("fee payment not found")
)

type (
	Repository interface {
		CreateStructure(s Structure) (Structure, error)
		QueryAllStructures() ([]Structure, error)
		GetStructureByID(id string) (Structure, error)
		FilterStructures(filter StructureFilter) ([]Structure, error)
		UpdateStructure(id string, us UpdateStructure) (Structure, error)
		DeleteStructuresByID(ids ...string) error

		CreatePayment(p Payment) (Payment, error)
		QueryAllPayments() ([]Payment, error)
		GetPaymentByID(id string) (Payment, error)
		FilterPayments(filter PaymentFilter) ([]Payment, error)
		// UpdatePayment merges up over the stored payment. derive, when set, is called with the
		// merged payment and the structure it references before it is stored, both read under
		// the same locks. A missing structure fails with ErrStructureNotFound.
		UpdatePayment(id string, up UpdatePayment, derive func(p *Payment, struc Structure)) (Payment, error)
		DeletePaymentsByID(ids ...string) error
		// MarkPaymentsOverdue switches every payment for which Payment.IsOverdue(today) holds
		// to StatusOverdue and returns how many changed.
		MarkPaymentsOverdue(today string) (int, error)
	}

	StudentGetter interface {
		GetStudentByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentGetter
		mailSvc  core.EmailService
		currency string
	}
)

func NewService(repo Repository, students StudentGetter, mailSvc core.EmailService, currency string) *Service {
	return &Service{repo: repo, students: students, mailSvc: mailSvc, currency: currency}
}

// Structures

func (svc *Service) CreateStructure(ns NewStructure) (Structure, error) {
	if err := ns.Validate(); err != nil {
		return Structure{}, err
	}
	return svc.repo.CreateStructure(Structure{
		Name:        ns.Name,
		Grade:       ns.Grade,
		Amount:      ns.Amount,
		Frequency:   ns.Frequency,
		DueDate:     ns.DueDate,
		Description: ns.Description,
	})
}

func (svc *Service) QueryAllStructures() ([]Structure, error) {
	return svc.repo.QueryAllStructures()
}

func (svc *Service) GetStructureByID(id string) (Structure, error) {
	return svc.repo.GetStructureByID(core.CleanString(id))
}

func (svc *Service) FilterStructures(filter StructureFilter) ([]Structure, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllStructures()
	}
	return svc.repo.FilterStructures(filter)
}

// UpdateStructure does not touch the payments already made against the structure.
func (svc *Service) UpdateStructure(id string, us UpdateStructure) (Structure, error) {
	if err := us.Validate(); err != nil {
		return Structure{}, err
	}
	return svc.repo.UpdateStructure(id, us)
}

func (svc *Service) DeleteStructures(ids ...string) error {
	return svc.repo.DeleteStructuresByID(ids...)
}

// Payments

func (svc *Service) checkReferences(studentID, structureID string) (student.Student, Structure, error) {
	var (
		stud    student.Student
		struc   Structure
		err     error
		fldErrs []core.FieldError
	)
	if studentID != "" {
		if stud, err = svc.students.GetStudentByID(studentID); err != nil {
			if err != student.ErrNotFound {
				return stud, struc, err
			}
			fldErrs = append(fldErrs, core.FieldError{Field: "student_id", Error: err.Error()})
		}
	}
	if structureID != "" {
		if struc, err = svc.repo.GetStructureByID(structureID); err != nil {
			if err != ErrStructureNotFound {
				return stud, struc, err
			}
			fldErrs = append(fldErrs, core.FieldError{Field: "fee_structure_id", Error: err.Error()})
		}
	}
	if fldErrs != nil {
		return stud, struc, core.NewValidationError(nil, fldErrs...)
	}
	return stud, struc, nil
}

// RecordPayment stores a payment against a fee structure, then emails a receipt to the student.
func (svc *Service) RecordPayment(np NewPayment) (Payment, error) {
	if err := np.Validate(); err != nil {
		return Payment{}, err
	}
	stud, struc, err := svc.checkReferences(np.StudentID, np.FeeStructureID)
	if err != nil {
		return Payment{}, err
	}

	status, remaining := ComputeStatus(struc.Amount, np.PaidAmount)
	pmt, err := svc.repo.CreatePayment(Payment{
		StudentID:       np.StudentID,
		FeeStructureID:  np.FeeStructureID,
		Amount:          struc.Amount,
		PaidAmount:      np.PaidAmount,
		RemainingAmount: remaining,
		Status:          status,
		PaymentMethod:   np.PaymentMethod,
		TransactionID:   np.TransactionID,
		Remarks:         np.Remarks,
		PaymentDate:     core.Today(),
		DueDate:         struc.DueDate,
	})
	if err != nil {
		return Payment{}, err
	}

	svc.sendReceipt(stud, struc, pmt)
	return pmt, nil
}

func (svc *Service) QueryAllPayments() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

func (svc *Service) GetPaymentByID(id string) (Payment, error) {
	return svc.repo.GetPaymentByID(core.CleanString(id))
}

func (svc *Service) FilterPayments(filter PaymentFilter) ([]Payment, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllPayments()
	}
	return svc.repo.FilterPayments(filter)
}

// UpdatePayment is a re-submission: when the structure or the paid amount changes, the amount,
// remaining amount, status and due date are computed again from the structure as it is now.
func (svc *Service) UpdatePayment(id string, up UpdatePayment) (Payment, error) {
	if err := up.Validate(); err != nil {
		return Payment{}, err
	}
	id = core.CleanString(id)
	if up.FeeStructureID == nil && up.PaidAmount == nil {
		return svc.repo.UpdatePayment(id, up, nil)
	}

	today := core.Today()
	pmt, err := svc.repo.UpdatePayment(id, up, func(p *Payment, struc Structure) {
		p.Status, p.RemainingAmount = ComputeStatus(struc.Amount, p.PaidAmount)
		p.Amount = struc.Amount
		p.DueDate = struc.DueDate
		p.PaymentDate = today
	})
	if err == ErrStructureNotFound {
		return Payment{}, core.NewValidationError(nil, core.FieldError{Field: "fee_structure_id", Error: err.Error()})
	}
	return pmt, err
}

func (svc *Service) DeletePayments(ids ...string) error {
	return svc.repo.DeletePaymentsByID(ids...)
}

// MarkOverdue switches the Pending and Partial payments whose due date is before today,
// and that still have money remaining, to Overdue. It returns how many payments changed.
func (svc *Service) MarkOverdue(today string) (int, error) {
	today = core.CleanString(today)
	if !core.IsDate(today) {
		return 0, core.NewValidationError(nil, core.FieldError{Field: "today", Error: "today must be a valid date (YYYY-MM-DD)"})
	}
	return svc.repo.MarkPaymentsOverdue(today)
}
