package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		StudentSvc    *student.Service
		TeacherSvc    *teacher.Service
		ClassSvc      *class.Service
		AttendanceSvc *attendance.Service
		FeeSvc        *fee.Service
		RoleSvc       *role.Service
		LeaveSvc      *leave.Service
		ReportSvc     *report.Service
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(ctx context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.HideBanner = true
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1", middleware.JWTWithConfig(newJWTConfig(conf)))
	perm := permissionMiddleware(s.opts.RoleSvc)

	registerStudentAPI(v1, perm, s.opts.StudentSvc, conf.ImportMaxUploadSize)
	registerTeacherAPI(v1, perm, s.opts.TeacherSvc)
	registerClassAPI(v1, perm, s.opts.ClassSvc)
	registerAttendanceAPI(v1, perm, s.opts.AttendanceSvc)
	registerFeeAPI(v1, perm, s.opts.FeeSvc)
	registerRoleAPI(v1, perm, s.opts.RoleSvc)
	registerLeaveAPI(v1, perm, s.opts.LeaveSvc)
	registerReportAPI(v1, perm, s.opts.ReportSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.opts.Conf.AppName+" API!")
}
