package teacher

import (
	"errors"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
)

type (
	Repository interface {
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		FilterTeachers(filter QueryFilter) ([]Teacher, error)
		UpdateTeacher(id string, ut UpdateTeacher) (Teacher, error)
		DeleteTeachersByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}
	return svc.repo.CreateTeacher(Teacher{
		Name:          nt.Name,
		Email:         nt.Email,
		Phone:         nt.Phone,
		Subject:       nt.Subject,
		Qualification: nt.Qualification,
		Experience:    nt.Experience,
		JoinDate:      nt.JoinDate,
		Status:        nt.Status,
	})
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(core.CleanString(id))
}

func (svc *Service) Filter(filter QueryFilter) ([]Teacher, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllTeachers()
	}
	return svc.repo.FilterTeachers(filter)
}

func (svc *Service) Update(id string, ut UpdateTeacher) (Teacher, error) {
	if err := ut.Validate(); err != nil {
		return Teacher{}, err
	}
	return svc.repo.UpdateTeacher(id, ut)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteTeachersByID(ids...)
}
