package attendance

import "github.com/su-ri-ya/littlechampions/core"

// Statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

type Record struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	ClassID   string `json:"class_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
}

// SameKey reports whether both records are for the same (student, class, date).
func (r Record) SameKey(o Record) bool {
	return r.StudentID == o.StudentID && r.ClassID == o.ClassID && r.Date == o.Date
}

// NewRecord contains information needed to mark a student's attendance.
type NewRecord struct {
	StudentID string `json:"student_id" validate:"required"`
	ClassID   string `json:"class_id" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Late"`
	Remarks   string `json:"remarks" validate:"max=500"`
}

func (nr *NewRecord) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.ClassID = core.CleanString(nr.ClassID)
	nr.Date = core.CleanString(nr.Date)
	nr.Status = core.CleanString(nr.Status)
	nr.Remarks = core.CleanString(nr.Remarks)
	return core.Validate.Struct(nr)
}

// Mark is one student's entry when marking a whole class.
type Mark struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Late"`
	Remarks   string `json:"remarks" validate:"max=500"`
}

// ClassMarks contains the attendance of a class for one date.
type ClassMarks struct {
	Date  string `json:"date" validate:"required,isodate"`
	Marks []Mark `json:"marks" validate:"required,min=1,dive"`
}

func (cm *ClassMarks) Validate() error {
	cm.Date = core.CleanString(cm.Date)
	for i := range cm.Marks {
		cm.Marks[i].StudentID = core.CleanString(cm.Marks[i].StudentID)
		cm.Marks[i].Status = core.CleanString(cm.Marks[i].Status)
		cm.Marks[i].Remarks = core.CleanString(cm.Marks[i].Remarks)
	}
	return core.Validate.Struct(cm)
}

// UpdateRecord defines what may be changed on an existing record.
type UpdateRecord struct {
	Status  *string `json:"status" validate:"omitempty,oneof=Present Absent Late"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

func (ur *UpdateRecord) Validate() error {
	core.CleanStringPtr(ur.Status)
	core.CleanStringPtr(ur.Remarks)
	return core.Validate.Struct(ur)
}

// Apply merges the set fields over r.
func (ur UpdateRecord) Apply(r *Record) {
	if ur.Status != nil {
		r.Status = *ur.Status
	}
	if ur.Remarks != nil {
		r.Remarks = *ur.Remarks
	}
}

type QueryFilter struct {
	Date      string `query:"date"`
	ClassID   string `query:"class_id"`
	StudentID string `query:"student_id"`
	Status    string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Date == "" && qf.ClassID == "" && qf.StudentID == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Date = core.CleanString(qf.Date)
	qf.ClassID = core.CleanString(qf.ClassID)
	qf.StudentID = core.CleanString(qf.StudentID)
	qf.Status = core.CleanString(qf.Status)
}

// Match reports whether r satisfies every set field of the filter.
func (qf QueryFilter) Match(r Record) bool {
	return (qf.Date == "" || r.Date == qf.Date) &&
		(qf.ClassID == "" || r.ClassID == qf.ClassID) &&
		(qf.StudentID == "" || r.StudentID == qf.StudentID) &&
		(qf.Status == "" || r.Status == qf.Status)
}
