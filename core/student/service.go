package student

import (
	"errors"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(id string, us UpdateStudent) (Student, error)
		DeleteStudentsByID(ids ...string) error
	}

	Service struct {
		repo          Repository
		importMaxRows int
	}
)

func NewService(repo Repository, importMaxRows int) *Service {
	return &Service{repo: repo, importMaxRows: importMaxRows}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.CreateStudent(ns.student())
}

func (ns NewStudent) student() Student {
	return Student{
		Name:           ns.Name,
		Email:          ns.Email,
		Phone:          ns.Phone,
		Grade:          ns.Grade,
		DateOfBirth:    ns.DateOfBirth,
		Address:        ns.Address,
		ParentName:     ns.ParentName,
		ParentPhone:    ns.ParentPhone,
		EnrollmentDate: ns.EnrollmentDate,
		Status:         ns.Status,
	}
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(core.CleanString(id))
}

func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllStudents()
	}
	return svc.repo.FilterStudents(filter)
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.UpdateStudent(id, us)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
