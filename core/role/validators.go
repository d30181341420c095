package role

import (
	"github.com/go-playground/validator/v10"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	permissionTag  = "permission"
	permissionText = "{0} contains an unknown permission"
)

func init() {
	_ = core.Validate.RegisterValidation(permissionTag, permissionValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, permissionTag, permissionText)
}

func permissionValidation(fl validator.FieldLevel) bool {
	return IsPermission(fl.Field().String())
}
