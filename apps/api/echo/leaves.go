package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/role"
)

type leaveApi struct {
	svc *leave.Service
}

func registerLeaveAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *leave.Service) {
	api := leaveApi{svc: svc}

	lg := g.Group("/leave-requests")
	lg.GET("", api.query, perm(role.AttendanceView))
	lg.POST("", api.create, perm(role.AttendanceMark))
	lg.GET("/:id", api.retrieve, perm(role.AttendanceView))
	lg.POST("/:id/approve", api.approve, perm(role.AttendanceMark))
	lg.POST("/:id/reject", api.reject, perm(role.AttendanceMark))
	lg.DELETE("/:id", api.destroy, perm(role.AttendanceMark))
}

func (api *leaveApi) create(ctx echo.Context) error {
	var data leave.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}
	r, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating leave request")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *leaveApi) query(ctx echo.Context) error {
	var filter leave.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []leave.Request{})
	}
	reqs, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying leave requests")
	}
	if reqs == nil {
		reqs = []leave.Request{}
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *leaveApi) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding leave request by ID")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *leaveApi) approve(ctx echo.Context) error {
	r, err := api.svc.Approve(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "approving leave request")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *leaveApi) reject(ctx echo.Context) error {
	r, err := api.svc.Reject(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "rejecting leave request")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *leaveApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting leave request")
	}
	return ctx.NoContent(http.StatusNoContent)
}
