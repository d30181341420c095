package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/role"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance")
	ag.GET("", api.query, perm(role.AttendanceView))
	ag.POST("", api.mark, perm(role.AttendanceMark))
	ag.DELETE("", api.destroyMultiple, perm(role.AttendanceMark))
	ag.POST("/classes/:id", api.markClass, perm(role.AttendanceMark))
	ag.GET("/:id", api.retrieve, perm(role.AttendanceView))
	ag.PUT("/:id", api.update, perm(role.AttendanceMark))
	ag.DELETE("/:id", api.destroy, perm(role.AttendanceMark))
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	rec, err := api.svc.Mark(data)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) markClass(ctx echo.Context) error {
	var data attendance.ClassMarks
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassMarks")
	}
	recs, err := api.svc.MarkClass(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "marking class attendance")
	}
	return ctx.JSON(http.StatusCreated, recs)
}

func (api *attendanceApi) query(ctx echo.Context) error {
	var filter attendance.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []attendance.Record{})
	}
	recs, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	if recs == nil {
		recs = []attendance.Record{}
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	rec, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding attendance record by ID")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) update(ctx echo.Context) error {
	var data attendance.UpdateRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRecord")
	}
	rec, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating attendance record")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting attendance record")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) destroyMultiple(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ids...); err != nil {
		return errors.Wrap(err, "deleting attendance records")
	}
	return ctx.NoContent(http.StatusNoContent)
}
