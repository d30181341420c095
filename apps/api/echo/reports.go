package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/su-ri-ya/littlechampions/core/report"
	"github.com/su-ri-ya/littlechampions/core/role"
)

type reportApi struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *report.Service) {
	api := reportApi{svc: svc}

	rg := g.Group("/reports", perm(role.SettingsView))
	rg.GET("/dashboard", api.dashboard)
	rg.GET("/attendance", api.attendance)
	rg.GET("/classes", api.classes)
	rg.GET("/students", api.students)
	rg.GET("/fees", api.fees)
	rg.GET("/teachers", api.teachers)
	rg.GET("/timetable", api.timetable)
}

func (api *reportApi) dashboard(ctx echo.Context) error {
	var query DateQuery
	if err := query.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Dashboard(query.Date))
}

func (api *reportApi) attendance(ctx echo.Context) error {
	var query DateQuery
	if err := query.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Attendance(query.Date))
}

func (api *reportApi) classes(ctx echo.Context) error {
	var query DateQuery
	if err := query.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Classes(query.Date))
}

func (api *reportApi) students(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Students())
}

func (api *reportApi) fees(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Fees())
}

func (api *reportApi) teachers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Teachers())
}

func (api *reportApi) timetable(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Timetable())
}
