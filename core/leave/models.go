package leave

import "github.com/su-ri-ya/littlechampions/core"

// Statuses
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Request is a student's request to be excused between two dates, both included.
type Request struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Status    string `json:"status"`
}

// Covers reports whether date falls within the requested period.
func (r Request) Covers(date string) bool {
	return r.FromDate <= date && date <= r.ToDate
}

type NewRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Reason    string `json:"reason" validate:"required,min=5,max=500"`
	FromDate  string `json:"from_date" validate:"required,isodate"`
	ToDate    string `json:"to_date" validate:"required,isodate"`
}

func (nr *NewRequest) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Reason = core.CleanString(nr.Reason)
	nr.FromDate = core.CleanString(nr.FromDate)
	nr.ToDate = core.CleanString(nr.ToDate)
	return core.Validate.Struct(nr)
}

type QueryFilter struct {
	StudentID string `query:"student_id"`
	Status    string `query:"status"`
	Date      string `query:"date"` // requests covering the date
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.StudentID == "" && qf.Status == "" && qf.Date == ""
}

func (qf *QueryFilter) Clean() {
	qf.StudentID = core.CleanString(qf.StudentID)
	qf.Status = core.CleanString(qf.Status)
	qf.Date = core.CleanString(qf.Date)
}

func (qf QueryFilter) Match(r Request) bool {
	return (qf.StudentID == "" || r.StudentID == qf.StudentID) &&
		(qf.Status == "" || r.Status == qf.Status) &&
		(qf.Date == "" || r.Covers(qf.Date))
}
