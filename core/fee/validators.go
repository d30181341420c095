package fee

import (
	"github.com/go-playground/validator/v10"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	paymentMethodTag  = "paymentmethod"
	paymentMethodText = "{0} must be one of Cash, Card, Bank Transfer or Online"
)

func init() {
	_ = core.Validate.RegisterValidation(paymentMethodTag, paymentMethodValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, paymentMethodTag, paymentMethodText)
}

// paymentMethodValidation checks the method is one of PaymentMethods; `oneof` cannot match "Bank Transfer".
func paymentMethodValidation(fl validator.FieldLevel) bool {
	method := fl.Field().String()
	for _, m := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}
