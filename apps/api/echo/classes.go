package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/role"
)

type classApi struct {
	svc *class.Service
}

func registerClassAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *class.Service) {
	api := classApi{svc: svc}

	cg := g.Group("/classes")
	cg.GET("", api.query, perm(role.ClassesView))
	cg.POST("", api.create, perm(role.ClassesCreate))
	cg.DELETE("", api.destroyMultiple, perm(role.ClassesDelete))
	cg.GET("/:id", api.retrieve, perm(role.ClassesView))
	cg.PUT("/:id", api.update, perm(role.ClassesEdit))
	cg.DELETE("/:id", api.destroy, perm(role.ClassesDelete))
}

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	c, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *classApi) query(ctx echo.Context) error {
	var filter class.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []class.Class{})
	}
	classes, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	if classes == nil {
		classes = []class.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding class by ID")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *classApi) update(ctx echo.Context) error {
	var data class.UpdateClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClass")
	}
	c, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating class")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *classApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) destroyMultiple(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ids...); err != nil {
		return errors.Wrap(err, "deleting classes")
	}
	return ctx.NoContent(http.StatusNoContent)
}
