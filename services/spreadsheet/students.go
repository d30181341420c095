// Package spreadsheet reads and writes the student import workbooks.
package spreadsheet

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/su-ri-ya/littlechampions/core/student"
)

// Formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

const (
	templateSheet = "Students"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	ErrUnsupportedFormat = errors.New("only .xlsx and .csv files are supported")
	ErrNoHeader          = errors.New("the spreadsheet has no header row")
)

// templateSample is the example row written below the header of the template.
var templateSample = map[string]string{
	"name":        "John Doe",
	"email":       "john@example.com",
	"phone":       "1234567890",
	"grade":       "10th Grade",
	"dateOfBirth": "2008-01-15",
	"address":     "123 Main St",
	"parentName":  "Jane Doe",
	"parentPhone": "0987654321",
	"status":      student.StatusActive,
}

// FormatOf returns the spreadsheet format matching the file extension.
func FormatOf(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", ErrUnsupportedFormat
}

// ReadStudents reads the rows of a student workbook. The first non-blank row is the header;
// blank rows are skipped. maxRows <= 0 disables the row limit.
func ReadStudents(r io.Reader, format string, maxRows int) ([]student.ImportRow, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatXLSX:
		records, err = readXLSX(r)
	case FormatCSV:
		records, err = readCSV(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return importRows(records, maxRows)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "reading first sheet")
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func importRows(records [][]string, maxRows int) ([]student.ImportRow, error) {
	var (
		keys []string
		rows []student.ImportRow
	)
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		if keys == nil {
			keys = make([]string, len(rec))
			for j, h := range rec {
				keys[j] = student.ColumnKey(h)
			}
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			return nil, student.ErrTooManyRows
		}

		values := make(map[string]string, len(keys))
		for j, cell := range rec {
			if j < len(keys) && keys[j] != "" {
				values[keys[j]] = cell
			}
		}
		rows = append(rows, student.RowFromValues(i+1, values))
	}
	if keys == nil {
		return nil, ErrNoHeader
	}
	return rows, nil
}

// WriteTemplate writes the import template: a bold header row and one sample student.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}
	for i, col := range student.ImportColumns {
		header, _ := excelize.CoordinatesToCellName(i+1, 1)
		sample, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(templateSheet, header, col); err != nil {
			return errors.Wrap(err, "writing header")
		}
		if err := f.SetCellValue(templateSheet, sample, templateSample[col]); err != nil {
			return errors.Wrap(err, "writing sample row")
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}
	if err := f.SetRowStyle(templateSheet, 1, 1, bold); err != nil {
		return errors.Wrap(err, "styling header")
	}
	lastCol, _ := excelize.ColumnNumberToName(len(student.ImportColumns))
	if err := f.SetColWidth(templateSheet, "A", lastCol, 18); err != nil {
		return errors.Wrap(err, "sizing columns")
	}

	_, err = f.WriteTo(w)
	return errors.Wrap(err, "writing workbook")
}
