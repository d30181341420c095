package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/su-ri-ya/littlechampions/core"
)

type DestroyMultipleRequest struct {
	IDs []string `query:"id"`
}

// DateQuery binds the optional `date` query parameter, defaulting to today.
type DateQuery struct {
	Date string `query:"date"`
}

func (dq *DateQuery) Bind(ctx echo.Context) error {
	dq.Date = core.CleanString(ctx.QueryParam("date"))
	if dq.Date == "" {
		dq.Date = core.Today()
		return nil
	}
	if !core.IsDate(dq.Date) {
		return core.NewValidationError(nil, core.FieldError{Field: "date", Error: "date must be a valid date (YYYY-MM-DD)"})
	}
	return nil
}

// bindIDs binds the `id` query parameters of a bulk delete, nil when there are none.
func bindIDs(ctx echo.Context) []string {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return nil
	}
	ids := make([]string, 0, len(query.IDs))
	for _, id := range query.IDs {
		if id = core.CleanString(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
