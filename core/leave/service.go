package leave

import (
	"errors"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/student"
)

var (
	// errors
	ErrNotFound   = errors.New("leave request not found")
	ErrNotPending = errors.New("only pending requests can be approved or rejected")
)

type (
	Repository interface {
		CreateRequest(r Request) (Request, error)
		QueryAllRequests() ([]Request, error)
		GetRequestByID(id string) (Request, error)
		FilterRequests(filter QueryFilter) ([]Request, error)
		// SetRequestStatus moves a Pending request to status, ErrNotPending otherwise.
		SetRequestStatus(id, status string) (Request, error)
		DeleteRequestsByID(ids ...string) error
	}

	StudentGetter interface {
		GetStudentByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentGetter
	}
)

func NewService(repo Repository, students StudentGetter) *Service {
	return &Service{repo: repo, students: students}
}

func (svc *Service) Create(nr NewRequest) (Request, error) {
	if err := nr.Validate(); err != nil {
		return Request{}, err
	}
	if _, err := svc.students.GetStudentByID(nr.StudentID); err != nil {
		if err != student.ErrNotFound {
			return Request{}, err
		}
		return Request{}, core.NewValidationError(nil, core.FieldError{Field: "student_id", Error: err.Error()})
	}
	return svc.repo.CreateRequest(Request{
		StudentID: nr.StudentID,
		Reason:    nr.Reason,
		FromDate:  nr.FromDate,
		ToDate:    nr.ToDate,
		Status:    StatusPending,
	})
}

func (svc *Service) QueryAll() ([]Request, error) {
	return svc.repo.QueryAllRequests()
}

func (svc *Service) GetByID(id string) (Request, error) {
	return svc.repo.GetRequestByID(core.CleanString(id))
}

func (svc *Service) Filter(filter QueryFilter) ([]Request, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllRequests()
	}
	return svc.repo.FilterRequests(filter)
}

func (svc *Service) Approve(id string) (Request, error) {
	return svc.repo.SetRequestStatus(core.CleanString(id), StatusApproved)
}

func (svc *Service) Reject(id string) (Request, error) {
	return svc.repo.SetRequestStatus(core.CleanString(id), StatusRejected)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteRequestsByID(ids...)
}
