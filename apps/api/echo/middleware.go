package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core/role"
)

// permissionMiddleware lets the request through when the role of the token currently holds perm.
func permissionMiddleware(svc *role.Service) func(perm string) echo.MiddlewareFunc {
	return func(perm string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx echo.Context) error {
				claims, err := getContextClaims(ctx)
				if err != nil {
					return errors.Wrap(err, "getting context claims")
				}
				ok, err := svc.HasPermission(claims.RoleID, perm)
				if err != nil {
					return errors.Wrap(err, "checking permission")
				}
				if !ok {
					return errHttpForbidden
				}
				return next(ctx)
			}
		}
	}
}
