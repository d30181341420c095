package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/role"
)

type (
	feeApi struct {
		svc *fee.Service
	}

	MarkOverdueResponse struct {
		Date   string `json:"date"`
		Marked int    `json:"marked"`
	}
)

func registerFeeAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *fee.Service) {
	api := feeApi{svc: svc}

	sg := g.Group("/fees/structures")
	sg.GET("", api.queryStructures, perm(role.FeesView))
	sg.POST("", api.createStructure, perm(role.FeesManage))
	sg.DELETE("", api.destroyStructures, perm(role.FeesManage))
	sg.GET("/:id", api.retrieveStructure, perm(role.FeesView))
	sg.PUT("/:id", api.updateStructure, perm(role.FeesManage))
	sg.DELETE("/:id", api.destroyStructure, perm(role.FeesManage))

	pg := g.Group("/fees/payments")
	pg.GET("", api.queryPayments, perm(role.FeesView))
	pg.POST("", api.recordPayment, perm(role.FeesCollect))
	pg.DELETE("", api.destroyPayments, perm(role.FeesCollect))
	pg.POST("/mark-overdue", api.markOverdue, perm(role.FeesManage))
	pg.GET("/:id", api.retrievePayment, perm(role.FeesView))
	pg.PUT("/:id", api.updatePayment, perm(role.FeesCollect))
	pg.DELETE("/:id", api.destroyPayment, perm(role.FeesCollect))
}

// Structures

func (api *feeApi) createStructure(ctx echo.Context) error {
	var data fee.NewStructure
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStructure")
	}
	s, err := api.svc.CreateStructure(data)
	if err != nil {
		return errors.Wrap(err, "creating fee structure")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *feeApi) queryStructures(ctx echo.Context) error {
	var filter fee.StructureFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []fee.Structure{})
	}
	structures, err := api.svc.FilterStructures(filter)
	if err != nil {
		return errors.Wrap(err, "querying fee structures")
	}
	if structures == nil {
		structures = []fee.Structure{}
	}
	return ctx.JSON(http.StatusOK, structures)
}

func (api *feeApi) retrieveStructure(ctx echo.Context) error {
	s, err := api.svc.GetStructureByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding fee structure by ID")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *feeApi) updateStructure(ctx echo.Context) error {
	var data fee.UpdateStructure
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStructure")
	}
	s, err := api.svc.UpdateStructure(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating fee structure")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *feeApi) destroyStructure(ctx echo.Context) error {
	if err := api.svc.DeleteStructures(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting fee structure")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *feeApi) destroyStructures(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeleteStructures(ids...); err != nil {
		return errors.Wrap(err, "deleting fee structures")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Payments

func (api *feeApi) recordPayment(ctx echo.Context) error {
	var data fee.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	p, err := api.svc.RecordPayment(data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *feeApi) queryPayments(ctx echo.Context) error {
	var filter fee.PaymentFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []fee.Payment{})
	}
	payments, err := api.svc.FilterPayments(filter)
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	if payments == nil {
		payments = []fee.Payment{}
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *feeApi) retrievePayment(ctx echo.Context) error {
	p, err := api.svc.GetPaymentByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding payment by ID")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *feeApi) updatePayment(ctx echo.Context) error {
	var data fee.UpdatePayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePayment")
	}
	p, err := api.svc.UpdatePayment(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating payment")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *feeApi) destroyPayment(ctx echo.Context) error {
	if err := api.svc.DeletePayments(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting payment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *feeApi) destroyPayments(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeletePayments(ids...); err != nil {
		return errors.Wrap(err, "deleting payments")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// markOverdue runs the overdue sweep on demand, as of the `date` query parameter or today.
func (api *feeApi) markOverdue(ctx echo.Context) error {
	var query DateQuery
	if err := query.Bind(ctx); err != nil {
		return err
	}
	n, err := api.svc.MarkOverdue(query.Date)
	if err != nil {
		return errors.Wrap(err, "marking overdue payments")
	}
	return ctx.JSON(http.StatusOK, MarkOverdueResponse{Date: query.Date, Marked: n})
}
