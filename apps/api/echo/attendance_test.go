package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/report"
)

func TestAttendanceApi(t *testing.T) {
	f := setup(t)

	marks := marshalObj(t, attendance.ClassMarks{
		Date:  "2024-03-15",
		Marks: []attendance.Mark{{StudentID: "1", Status: attendance.StatusPresent}},
	})

	t.Run("mark class", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/classes/1", f.teacherToken, marks)
		f.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var records []attendance.Record
		unmarshal(t, rec.Body.Bytes(), &records)
		require.Len(t, records, 1)
		assert.Equal(t, "1", records[0].ClassID)
		assert.Equal(t, attendance.StatusPresent, records[0].Status)
	})

	runHTTPTests(t, f.app, []httpTest{
		{name: "accountant cannot mark", method: http.MethodPost, path: "/v1/attendance/classes/1", token: f.accountantToken, body: marks, wantCode: http.StatusForbidden},
		{name: "unknown class", method: http.MethodPost, path: "/v1/attendance/classes/42", token: f.teacherToken, body: marks, wantCode: http.StatusNotFound},
		{
			name: "student not enrolled", method: http.MethodPost, path: "/v1/attendance/classes/1", token: f.teacherToken,
			body: marshalObj(t, attendance.ClassMarks{
				Date:  "2024-03-15",
				Marks: []attendance.Mark{{StudentID: "2", Status: attendance.StatusAbsent}},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"marks[0].student_id": `student "2" is not enrolled in this class`}),
		},
		{
			name: "single record", method: http.MethodPost, path: "/v1/attendance", token: f.adminToken,
			body:     []byte(`{"student_id": "2", "class_id": "1", "date": "2024-03-15", "status": "Late"}`),
			wantCode: http.StatusCreated,
		},
		{name: "filter by date", path: "/v1/attendance?date=2024-03-15&class_id=1", token: f.teacherToken, wantCode: http.StatusOK},
		{name: "unknown record", path: "/v1/attendance/42", token: f.teacherToken, wantCode: http.StatusNotFound},
	})

	t.Run("filtered records", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance?date=2024-03-15", f.teacherToken)
		f.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var records []attendance.Record
		unmarshal(t, rec.Body.Bytes(), &records)
		assert.Len(t, records, 2)
	})
}

func TestLeaveApi(t *testing.T) {
	f := setup(t)

	body := []byte(`{"student_id": "1", "reason": "Family wedding", "from_date": "2024-03-20", "to_date": "2024-03-22"}`)
	req, rec := newAuthRequest(http.MethodPost, "/v1/leave-requests", f.teacherToken, body)
	f.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var lr leave.Request
	unmarshal(t, rec.Body.Bytes(), &lr)
	assert.Equal(t, leave.StatusPending, lr.Status)

	runHTTPTests(t, f.app, []httpTest{
		{
			name: "dates out of order", method: http.MethodPost, path: "/v1/leave-requests", token: f.teacherToken,
			body:     []byte(`{"student_id": "1", "reason": "Family wedding", "from_date": "2024-03-22", "to_date": "2024-03-20"}`),
			wantCode: http.StatusBadRequest,
		},
		{name: "pending in dashboard", path: "/v1/reports/dashboard?date=2024-03-15", token: f.adminToken, wantCode: http.StatusOK},
		{name: "approve", method: http.MethodPost, path: "/v1/leave-requests/" + lr.ID + "/approve", token: f.teacherToken, wantCode: http.StatusOK},
		{
			name: "reject approved", method: http.MethodPost, path: "/v1/leave-requests/" + lr.ID + "/reject", token: f.teacherToken,
			wantCode: http.StatusBadRequest, wantData: marshalObj(t, httpErr{Error: leave.ErrNotPending.Error()}),
		},
		{name: "approve unknown", method: http.MethodPost, path: "/v1/leave-requests/42/approve", token: f.teacherToken, wantCode: http.StatusNotFound},
		{name: "accountant cannot approve", method: http.MethodPost, path: "/v1/leave-requests/" + lr.ID + "/approve", token: f.accountantToken, wantCode: http.StatusForbidden},
	})
}

func TestReportApi(t *testing.T) {
	f := setup(t)

	marks := []byte(`{"date": "2024-03-15", "marks": [{"student_id": "1", "status": "Present"}]}`)
	req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/classes/1", f.teacherToken, marks)
	f.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	runHTTPTests(t, f.app, []httpTest{
		{
			name: "dashboard", path: "/v1/reports/dashboard?date=2024-03-15", token: f.adminToken, wantCode: http.StatusOK,
			wantData: marshalObj(t, report.DashboardStats{
				Date: "2024-03-15", Students: 2, ActiveStudents: 2, Teachers: 2, Classes: 1, AttendanceRate: 100,
			}),
		},
		{
			name: "dashboard on another day", path: "/v1/reports/dashboard?date=2024-03-16", token: f.accountantToken, wantCode: http.StatusOK,
			wantData: marshalObj(t, report.DashboardStats{
				Date: "2024-03-16", Students: 2, ActiveStudents: 2, Teachers: 2, Classes: 1,
			}),
		},
		{
			name: "invalid date", path: "/v1/reports/attendance?date=yesterday", token: f.adminToken, wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"date": "date must be a valid date (YYYY-MM-DD)"}),
		},
		{name: "teachers cannot view reports", path: "/v1/reports/dashboard", token: f.teacherToken, wantCode: http.StatusForbidden},
		{name: "classes", path: "/v1/reports/classes?date=2024-03-15", token: f.adminToken, wantCode: http.StatusOK},
		{name: "students", path: "/v1/reports/students", token: f.adminToken, wantCode: http.StatusOK},
		{name: "fees", path: "/v1/reports/fees", token: f.adminToken, wantCode: http.StatusOK},
		{name: "teachers", path: "/v1/reports/teachers", token: f.adminToken, wantCode: http.StatusOK},
		{name: "timetable", path: "/v1/reports/timetable", token: f.adminToken, wantCode: http.StatusOK},
	})
}
