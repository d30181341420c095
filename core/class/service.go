package class

import (
	"errors"
	"fmt"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

var (
	// errors
	ErrNotFound = errors.New("class not found")
)

type (
	Repository interface {
		CreateClass(c Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id string) (Class, error)
		FilterClasses(filter QueryFilter) ([]Class, error)
		// UpdateClass merges uc over the stored class. check, when set, runs on the merged
		// class under the write lock and its error leaves the stored class unchanged.
		UpdateClass(id string, uc UpdateClass, check func(Class) error) (Class, error)
		DeleteClassesByID(ids ...string) error
	}

	TeacherGetter interface {
		GetTeacherByID(id string) (teacher.Teacher, error)
	}

	StudentGetter interface {
		GetStudentByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		teachers TeacherGetter
		students StudentGetter
	}
)

func NewService(repo Repository, teachers TeacherGetter, students StudentGetter) *Service {
	return &Service{repo: repo, teachers: teachers, students: students}
}

func (svc *Service) checkTeacher(id string) ([]core.FieldError, error) {
	if _, err := svc.teachers.GetTeacherByID(id); err != nil {
		if err != teacher.ErrNotFound {
			return nil, err
		}
		return []core.FieldError{{Field: "teacher_id", Error: err.Error()}}, nil
	}
	return nil, nil
}

// checkRoster makes sure the roster fits the capacity and every enrolled student exists.
func (svc *Service) checkRoster(roster []string, capacity int) ([]core.FieldError, error) {
	if fe := rosterOverflow(roster, capacity, true); fe != nil {
		return []core.FieldError{*fe}, nil
	}
	return svc.checkStudents(roster)
}

func (svc *Service) checkStudents(roster []string) ([]core.FieldError, error) {
	for _, id := range roster {
		if _, err := svc.students.GetStudentByID(id); err != nil {
			if err != student.ErrNotFound {
				return nil, err
			}
			return []core.FieldError{{
				Field: "enrolled_students",
				Error: fmt.Sprintf("student %q not found", id),
			}}, nil
		}
	}
	return nil, nil
}

// rosterOverflow reports a roster larger than capacity, on the roster when it is the
// field being changed and on the capacity otherwise.
func rosterOverflow(roster []string, capacity int, rosterChanged bool) *core.FieldError {
	if len(roster) <= capacity {
		return nil
	}
	if rosterChanged {
		return &core.FieldError{
			Field: "enrolled_students",
			Error: fmt.Sprintf("cannot enroll more than %d students", capacity),
		}
	}
	return &core.FieldError{
		Field: "capacity",
		Error: fmt.Sprintf("capacity cannot be lower than the %d enrolled students", len(roster)),
	}
}

func (svc *Service) Create(nc NewClass) (Class, error) {
	nc.clean()
	if err := core.Validate.Struct(nc); err != nil {
		return Class{}, err
	}

	fldErrs, err := svc.checkTeacher(nc.TeacherID)
	if err != nil {
		return Class{}, err
	}
	rosterErrs, err := svc.checkRoster(nc.EnrolledStudents, nc.Capacity)
	if err != nil {
		return Class{}, err
	}
	if fldErrs = append(fldErrs, rosterErrs...); fldErrs != nil {
		return Class{}, core.NewValidationError(nil, fldErrs...)
	}

	return svc.repo.CreateClass(Class{
		Name:             nc.Name,
		Subject:          nc.Subject,
		TeacherID:        nc.TeacherID,
		Grade:            nc.Grade,
		Room:             nc.Room,
		Schedule:         nc.Schedule,
		Capacity:         nc.Capacity,
		EnrolledStudents: nc.EnrolledStudents,
	})
}

func (svc *Service) QueryAll() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

func (svc *Service) GetByID(id string) (Class, error) {
	return svc.repo.GetClassByID(core.CleanString(id))
}

func (svc *Service) Filter(filter QueryFilter) ([]Class, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllClasses()
	}
	return svc.repo.FilterClasses(filter)
}

// Update checks the references being changed, then lets the store check the
// capacity against the merged class while it holds the write lock, so that a
// concurrent roster change cannot leave more students enrolled than seats.
// Stored dangling references are tolerated.
func (svc *Service) Update(id string, uc UpdateClass) (Class, error) {
	uc.clean()
	if err := core.Validate.Struct(uc); err != nil {
		return Class{}, err
	}

	var (
		fldErrs []core.FieldError
		err     error
	)
	if uc.TeacherID != nil {
		if fldErrs, err = svc.checkTeacher(*uc.TeacherID); err != nil {
			return Class{}, err
		}
	}
	if uc.EnrolledStudents != nil {
		studentErrs, err := svc.checkStudents(uc.EnrolledStudents)
		if err != nil {
			return Class{}, err
		}
		fldErrs = append(fldErrs, studentErrs...)
	}
	if fldErrs != nil {
		return Class{}, core.NewValidationError(nil, fldErrs...)
	}

	return svc.repo.UpdateClass(core.CleanString(id), uc, func(merged Class) error {
		if fe := rosterOverflow(merged.EnrolledStudents, merged.Capacity, uc.EnrolledStudents != nil); fe != nil {
			return core.NewValidationError(nil, *fe)
		}
		return nil
	})
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteClassesByID(ids...)
}
