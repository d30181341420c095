package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/attendance"
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/fee"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/core/teacher"
	"github.com/su-ri-ya/littlechampions/services/spreadsheet"
)

var (
	errUnauthorized  = echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// domainErrors maps the domain sentinel errors to their HTTP status.
var domainErrors = map[error]int{
	student.ErrNotFound:              http.StatusNotFound,
	teacher.ErrNotFound:              http.StatusNotFound,
	class.ErrNotFound:                http.StatusNotFound,
	attendance.ErrNotFound:           http.StatusNotFound,
	fee.ErrStructureNotFound:         http.StatusNotFound,
	fee.ErrPaymentNotFound:           http.StatusNotFound,
	role.ErrNotFound:                 http.StatusNotFound,
	leave.ErrNotFound:                http.StatusNotFound,
	leave.ErrNotPending:              http.StatusBadRequest,
	student.ErrTooManyRows:           http.StatusBadRequest,
	spreadsheet.ErrUnsupportedFormat: http.StatusBadRequest,
	spreadsheet.ErrNoHeader:          http.StatusBadRequest,
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				message = origErr.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors, *core.ValidationError:
			code = http.StatusBadRequest
			if vErr, ok := origErr.(*core.ValidationError); ok && vErr.Fields == nil {
				message = vErr.Error()
			} else {
				message = core.FieldErrors(origErr, core.Translator)
			}
		default:
			if status, ok := domainErrors[cause]; ok {
				code = status
				message = cause.Error()
				break
			}

			// any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			logger.Error(msg, errors.Wrap(err, msg), contextPerson(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
