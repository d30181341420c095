package echoapi

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/services/spreadsheet"
)

const (
	importFileField    = "file"
	importTemplateName = "students_import_template.xlsx"
)

type studentApi struct {
	svc *student.Service
}

// registerStudentAPI mounts the student routes. Import uploads larger than uploadLimit
// (e.g. "10M") are refused before they are parsed.
func registerStudentAPI(g *echo.Group, perm func(string) echo.MiddlewareFunc, svc *student.Service, uploadLimit string) {
	api := studentApi{svc: svc}

	importMw := []echo.MiddlewareFunc{perm(role.StudentsCreate)}
	if uploadLimit != "" {
		importMw = append(importMw, middleware.BodyLimit(uploadLimit))
	}

	sg := g.Group("/students")
	sg.GET("", api.query, perm(role.StudentsView))
	sg.POST("", api.create, perm(role.StudentsCreate))
	sg.DELETE("", api.destroyMultiple, perm(role.StudentsDelete))
	sg.POST("/import", api.importFile, importMw...)
	sg.GET("/import/template", api.importTemplate, perm(role.StudentsView))
	sg.GET("/:id", api.retrieve, perm(role.StudentsView))
	sg.PUT("/:id", api.update, perm(role.StudentsEdit))
	sg.DELETE("/:id", api.destroy, perm(role.StudentsDelete))
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	s, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *studentApi) query(ctx echo.Context) error {
	var filter student.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return ctx.JSON(http.StatusOK, []student.Student{})
	}
	students, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	s, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	s, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) destroyMultiple(ctx echo.Context) error {
	ids := bindIDs(ctx)
	if ids == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ids...); err != nil {
		return errors.Wrap(err, "deleting students")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// importFile imports the students of the uploaded .xlsx or .csv file.
func (api *studentApi) importFile(ctx echo.Context) error {
	fh, err := ctx.FormFile(importFileField)
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: importFileField, Error: "a spreadsheet file is required"})
	}
	format, err := spreadsheet.FormatOf(fh.Filename)
	if err != nil {
		return err
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded file")
	}
	defer f.Close()

	rows, err := spreadsheet.ReadStudents(f, format, api.svc.ImportMaxRows())
	if err != nil {
		if errors.Cause(err) == student.ErrTooManyRows || errors.Cause(err) == spreadsheet.ErrNoHeader {
			return err
		}
		return core.NewValidationError(nil, core.FieldError{Field: importFileField, Error: err.Error()})
	}
	res, err := api.svc.Import(rows)
	if err != nil {
		return errors.Wrap(err, "importing students")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *studentApi) importTemplate(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := spreadsheet.WriteTemplate(&buf); err != nil {
		return errors.Wrap(err, "writing import template")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+importTemplateName+`"`)
	return ctx.Blob(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}
