package leave

import (
	"github.com/go-playground/validator/v10"

	"github.com/su-ri-ya/littlechampions/core"
)

var (
	periodTag  = "period"
	periodText = "{0} cannot be before from_date"
)

func init() {
	core.Validate.RegisterStructValidation(requestStructValidation, NewRequest{})
	core.RegisterCustomTranslation(core.Validate, core.Translator, periodTag, periodText)
}

// requestStructValidation checks that the period does not end before it starts.
func requestStructValidation(sl validator.StructLevel) {
	nr := sl.Current().Interface().(NewRequest)
	if core.IsDate(nr.FromDate) && core.IsDate(nr.ToDate) && nr.ToDate < nr.FromDate {
		sl.ReportError(nr.ToDate, "to_date", "ToDate", periodTag, "")
	}
}
