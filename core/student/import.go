package student

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/su-ri-ya/littlechampions/core"
)

var ErrTooManyRows = errors.New("too many rows")

const nameMaxSim = .9

// ImportColumns are the spreadsheet columns read by Import, in template order.
var ImportColumns = []string{
	"name", "email", "phone", "grade", "dateOfBirth", "address", "parentName", "parentPhone", "status",
}

type (
	ImportRow struct {
		Line    int // 1-based, header included
		Student NewStudent
	}

	// ImportedRow is a created student with the line it was read from.
	ImportedRow struct {
		Line int `json:"line"`
		Student
	}

	RowError struct {
		Line   int    `json:"line"`
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}

	ImportResult struct {
		Imported int           `json:"imported"`
		Skipped  int           `json:"skipped"`
		Students []ImportedRow `json:"students"`
		Rejected []RowError    `json:"rejected"`
	}
)

// ColumnKey normalizes a header cell so that "Date of Birth", "date_of_birth" and "dateOfBirth" match.
func ColumnKey(header string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(header)))
}

// RowFromValues builds an ImportRow from cells keyed by ColumnKey.
func RowFromValues(line int, values map[string]string) ImportRow {
	get := func(col string) string { return values[ColumnKey(col)] }
	return ImportRow{
		Line: line,
		Student: NewStudent{
			Name:        get("name"),
			Email:       get("email"),
			Phone:       get("phone"),
			Grade:       get("grade"),
			DateOfBirth: get("dateOfBirth"),
			Address:     get("address"),
			ParentName:  get("parentName"),
			ParentPhone: get("parentPhone"),
			Status:      get("status"),
		},
	}
}

// ImportMaxRows is the most rows a single import accepts, 0 meaning no limit.
func (svc *Service) ImportMaxRows() int { return svc.importMaxRows }

// Import validates every row independently and creates the valid, non-duplicate ones.
// Rows are enrolled today, status defaults to Active.
func (svc *Service) Import(rows []ImportRow) (ImportResult, error) {
	if svc.importMaxRows > 0 && len(rows) > svc.importMaxRows {
		return ImportResult{}, ErrTooManyRows
	}

	known, err := svc.repo.QueryAllStudents()
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Students: []ImportedRow{}, Rejected: []RowError{}}
	for _, row := range rows {
		ns := row.Student
		ns.EnrollmentDate = ""
		if err := ns.Validate(); err != nil {
			res.Rejected = append(res.Rejected, RowError{Line: row.Line, Name: ns.Name, Reason: reason(err)})
			continue
		}
		if dup, ok := findDuplicate(ns, known); ok {
			res.Rejected = append(res.Rejected, RowError{
				Line:   row.Line,
				Name:   ns.Name,
				Reason: fmt.Sprintf("duplicate of %s (%s)", dup.Name, dup.Email),
			})
			continue
		}

		s, err := svc.repo.CreateStudent(ns.student())
		if err != nil {
			return res, err
		}
		res.Students = append(res.Students, ImportedRow{Line: row.Line, Student: s})
		known = append(known, s)
	}

	res.Imported = len(res.Students)
	res.Skipped = len(res.Rejected)
	return res, nil
}

func findDuplicate(ns NewStudent, known []Student) (Student, bool) {
	name := strings.ToLower(ns.Name)
	for _, s := range known {
		if strings.EqualFold(s.Email, ns.Email) {
			return s, true
		}
		if s.DateOfBirth == ns.DateOfBirth {
			ratio := difflib.NewMatcher(strings.Split(name, ""), strings.Split(strings.ToLower(s.Name), "")).QuickRatio()
			if ratio >= nameMaxSim {
				return s, true
			}
		}
	}
	return Student{}, false
}

func reason(err error) string {
	fldErrs := core.FieldErrors(err, core.Translator)
	if fldErrs == nil {
		return err.Error()
	}
	fields := make([]string, 0, len(fldErrs))
	for f := range fldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = f + ": " + fldErrs[f]
	}
	return strings.Join(msgs, "; ")
}
