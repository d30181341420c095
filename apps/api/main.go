package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

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
	"github.com/su-ri-ya/littlechampions/services/logger"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up store
	dbOpts := make([]dummydb.Option, 0, 2)
	if conf.Store.Seed {
		dbOpts = append(dbOpts, dummydb.WithSeed())
	}
	if conf.Store.SequentialIDs {
		dbOpts = append(dbOpts, dummydb.WithIDGenerator(core.SequentialIDs(0)))
	}
	db, err := dummydb.Open(dbOpts...)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}

	studentRepo := dummydb.NewStudentRepository(db)
	teacherRepo := dummydb.NewTeacherRepository(db)
	classRepo := dummydb.NewClassRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	feeSvc := fee.NewService(dummydb.NewFeeRepository(db), studentRepo, mailSvc, conf.Currency)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	overdueRuns := expvar.NewInt("overdue_runs")

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddress, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Overdue Sweeper

	ctx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()

	go sweepOverdue(ctx, conf.OverdueCheckInterval, func() {
		n, err := feeSvc.MarkOverdue(core.Today())
		if err != nil {
			logger.Error(fmt.Sprintf("marking overdue payments: %v", err), err)
			return
		}
		overdueRuns.Add(1)
		if n > 0 {
			logger.Info(fmt.Sprintf("%d payment(s) marked overdue", n))
		}
	})

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(&echoapi.Options{
		Conf:          conf,
		Logger:        logger,
		StudentSvc:    student.NewService(studentRepo, conf.ImportMaxRows),
		TeacherSvc:    teacher.NewService(teacherRepo),
		ClassSvc:      class.NewService(classRepo, teacherRepo, studentRepo),
		AttendanceSvc: attendance.NewService(dummydb.NewAttendanceRepository(db), studentRepo, classRepo),
		FeeSvc:        feeSvc,
		RoleSvc:       role.NewService(dummydb.NewRoleRepository(db)),
		LeaveSvc:      leave.NewService(dummydb.NewLeaveRepository(db), studentRepo),
		ReportSvc:     report.NewService(db, conf.ExcellentAttendance, conf.AtRiskAttendance),
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))
		cancelSweeper()

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// sweepOverdue runs fn once, then on every tick until ctx is done.
func sweepOverdue(ctx context.Context, interval time.Duration, fn func()) {
	fn()
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
