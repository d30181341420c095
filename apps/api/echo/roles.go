package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/role"
)

type (
	roleApi struct {
		svc *role.Service
	}

	PermissionsResponse struct {
		Permissions []role.Permission            `json:"permissions"`
		ByCategory  map[string][]role.Permission `json:"by_category"`
	}
)

func registerRoleAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *role.Service) {
	api := roleApi{svc: svc}

	g.GET("/permissions", api.queryPermissions, perm(role.RolesManage))

	rg := g.Group("/roles", perm(role.RolesManage))
	rg.GET("", api.query)
	rg.POST("", api.create)
	rg.DELETE("", api.destroyMultiple)
	rg.GET("/:id", api.retrieve)
	rg.PUT("/:id", api.update)
	rg.DELETE("/:id", api.destroy)
}

func (api *roleApi) queryPermissions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, PermissionsResponse{
		Permissions: role.Catalog,
		ByCategory:  role.PermissionsByCategory(),
	})
}

func (api *roleApi) create(ctx echo.Context) error {
	var data role.NewRole
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRole")
	}
	r, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating role")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *roleApi) query(ctx echo.Context) error {
	roles, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying roles")
	}
	if roles == nil {
		roles = []role.Role{}
	}
	return ctx.JSON(http.StatusOK, roles)
}

func (api *roleApi) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding role by ID")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *roleApi) update(ctx echo.Context) error {
	var data role.UpdateRole
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRole")
	}
	r, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating role")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *roleApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting role")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *roleApi) destroyMultiple(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ids...); err != nil {
		return errors.Wrap(err, "deleting roles")
	}
	return ctx.NoContent(http.StatusNoContent)
}
