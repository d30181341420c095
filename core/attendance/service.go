package attendance

import (
	"errors"
	"fmt"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/student"
)

var (
	// errors
	ErrNotFound = errors.New("attendance record not found")
)

type (
	Repository interface {
		// UpsertRecords stores every record, replacing the status and remarks of the one
		// already stored for the same (student, class, date), whose id is kept.
		UpsertRecords(records ...Record) ([]Record, error)
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id string) (Record, error)
		QueryRecordsByDate(date string) ([]Record, error)
		FilterRecords(filter QueryFilter) ([]Record, error)
		UpdateRecord(id string, ur UpdateRecord) (Record, error)
		DeleteRecordsByID(ids ...string) error
	}

	StudentGetter interface {
		GetStudentByID(id string) (student.Student, error)
	}

	ClassGetter interface {
		GetClassByID(id string) (class.Class, error)
	}

	Service struct {
		repo     Repository
		students StudentGetter
		classes  ClassGetter
	}
)

func NewService(repo Repository, students StudentGetter, classes ClassGetter) *Service {
	return &Service{repo: repo, students: students, classes: classes}
}

// Mark records the attendance of one student. Re-marking the same (student, class, date)
// updates the existing record.
func (svc *Service) Mark(nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}

	var fldErrs []core.FieldError
	if _, err := svc.students.GetStudentByID(nr.StudentID); err != nil {
		if err != student.ErrNotFound {
			return Record{}, err
		}
		fldErrs = append(fldErrs, core.FieldError{Field: "student_id", Error: err.Error()})
	}
	if _, err := svc.classes.GetClassByID(nr.ClassID); err != nil {
		if err != class.ErrNotFound {
			return Record{}, err
		}
		fldErrs = append(fldErrs, core.FieldError{Field: "class_id", Error: err.Error()})
	}
	if fldErrs != nil {
		return Record{}, core.NewValidationError(nil, fldErrs...)
	}

	recs, err := svc.repo.UpsertRecords(Record{
		StudentID: nr.StudentID,
		ClassID:   nr.ClassID,
		Date:      nr.Date,
		Status:    nr.Status,
		Remarks:   nr.Remarks,
	})
	if err != nil {
		return Record{}, err
	}
	return recs[0], nil
}

// MarkClass records the attendance of the enrolled students of a class for one date.
// Every mark is validated first: nothing is stored if any of them is invalid.
func (svc *Service) MarkClass(classID string, cm ClassMarks) ([]Record, error) {
	cls, err := svc.classes.GetClassByID(core.CleanString(classID))
	if err != nil {
		return nil, err
	}
	if err := cm.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cm.Marks))
	records := make([]Record, 0, len(cm.Marks))
	for i, m := range cm.Marks {
		field := fmt.Sprintf("marks[%d].student_id", i)
		if seen[m.StudentID] {
			return nil, core.NewValidationError(nil, core.FieldError{Field: field, Error: "student is marked more than once"})
		}
		seen[m.StudentID] = true
		if !cls.IsEnrolled(m.StudentID) {
			return nil, core.NewValidationError(nil, core.FieldError{
				Field: field,
				Error: fmt.Sprintf("student %q is not enrolled in this class", m.StudentID),
			})
		}
		records = append(records, Record{
			StudentID: m.StudentID,
			ClassID:   cls.ID,
			Date:      cm.Date,
			Status:    m.Status,
			Remarks:   m.Remarks,
		})
	}
	return svc.repo.UpsertRecords(records...)
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetRecordByID(core.CleanString(id))
}

// QueryByDate returns the records marked on date, in marking order.
func (svc *Service) QueryByDate(date string) ([]Record, error) {
	return svc.repo.QueryRecordsByDate(core.CleanString(date))
}

func (svc *Service) Filter(filter QueryFilter) ([]Record, error) {
	filter.Clean()
	switch {
	case filter.IsEmpty():
		return svc.repo.QueryAllRecords()
	case filter == (QueryFilter{Date: filter.Date}):
		return svc.repo.QueryRecordsByDate(filter.Date)
	}
	return svc.repo.FilterRecords(filter)
}

func (svc *Service) Update(id string, ur UpdateRecord) (Record, error) {
	if err := ur.Validate(); err != nil {
		return Record{}, err
	}
	return svc.repo.UpdateRecord(id, ur)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteRecordsByID(ids...)
}
