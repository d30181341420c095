package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/su-ri-ya/littlechampions/apps/api/echo"
	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
	"github.com/su-ri-ya/littlechampions/services/email"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
	"github.com/su-ri-ya/littlechampions/tests"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type fixture struct {
	app     echoapi.Server
	conf    *core.Config
	db      *dummydb.DB
	mailSvc *emailsvc.ConsoleServiceMock

	adminToken      string
	teacherToken    string
	accountantToken string
}

func setup(t *testing.T) fixture {
	conf := testutil.NewConfig()
	logger := testutil.NewLogger(conf)
	db := testutil.OpenDB(t, dummydb.WithSeed())

	// set up repos
	studentRepo := dummydb.NewStudentRepository(db)
	teacherRepo := dummydb.NewTeacherRepository(db)
	classRepo := dummydb.NewClassRepository(db)
	roleRepo := dummydb.NewRoleRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	roleSvc := role.NewService(roleRepo)

	// set up server
	app := echoapi.NewServer(&echoapi.Options{
		Conf:           conf,
		Logger:         logger,
		DisableReqLogs: true,
		StudentSvc:     student.NewService(studentRepo, conf.ImportMaxRows),
		TeacherSvc:     teacher.NewService(teacherRepo),
		ClassSvc:       class.NewService(classRepo, teacherRepo, studentRepo),
		AttendanceSvc:  attendance.NewService(dummydb.NewAttendanceRepository(db), studentRepo, classRepo),
		FeeSvc:         fee.NewService(dummydb.NewFeeRepository(db), studentRepo, mailSvc, conf.Currency),
		RoleSvc:        roleSvc,
		LeaveSvc:       leave.NewService(dummydb.NewLeaveRepository(db), studentRepo),
		ReportSvc:      report.NewService(db, conf.ExcellentAttendance, conf.AtRiskAttendance),
	})

	return fixture{
		app:             app,
		conf:            conf,
		db:              db,
		mailSvc:         mailSvc,
		adminToken:      getToken(t, conf, roleSvc, dummydb.AdministratorRoleID),
		teacherToken:    getToken(t, conf, roleSvc, dummydb.TeacherRoleID),
		accountantToken: getToken(t, conf, roleSvc, dummydb.AccountantRoleID),
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, conf *core.Config, svc *role.Service, roleID string) string {
	t.Helper()
	r, err := svc.GetByID(roleID)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	token, err := echoapi.GenerateToken(conf, echoapi.NewClaims(conf, r))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, data []byte, dst interface{}) {
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("unmarshal(%s) failed: %v", data, err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func today() string {
	return core.Today()
}
