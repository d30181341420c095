package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/services/spreadsheet"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  error
	}{
		{filename: "students.xlsx", want: spreadsheet.FormatXLSX},
		{filename: "STUDENTS.CSV", want: spreadsheet.FormatCSV},
		{filename: "students.xls", wantErr: spreadsheet.ErrUnsupportedFormat},
		{filename: "students", wantErr: spreadsheet.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := spreadsheet.FormatOf(tt.filename)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadStudents_CSV(t *testing.T) {
	data := "\ufeffName,Email,Grade,Date of Birth,parent_name\n" +
		"Emma Wilson,emma.w@student.com,Grade 10,2008-05-15,John Wilson\n" +
		",,,,\n" +
		"James Smith, james.s@student.com,Grade 9,2009-08-22\n"

	rows, err := spreadsheet.ReadStudents(strings.NewReader(data), spreadsheet.FormatCSV, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, student.NewStudent{
		Name:        "Emma Wilson",
		Email:       "emma.w@student.com",
		Grade:       "Grade 10",
		DateOfBirth: "2008-05-15",
		ParentName:  "John Wilson",
	}, rows[0].Student)

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "james.s@student.com", rows[1].Student.Email)
	assert.Empty(t, rows[1].Student.ParentName)
}

func TestReadStudents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		maxRows int
		wantErr error
	}{
		{name: "empty", data: "", format: spreadsheet.FormatCSV, wantErr: spreadsheet.ErrNoHeader},
		{name: "blank only", data: "\n,,\n", format: spreadsheet.FormatCSV, wantErr: spreadsheet.ErrNoHeader},
		{name: "too many rows", data: "name\na\nb\nc\n", format: spreadsheet.FormatCSV, maxRows: 2, wantErr: student.ErrTooManyRows},
		{name: "unknown format", data: "name\na\n", format: "ods", wantErr: spreadsheet.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spreadsheet.ReadStudents(strings.NewReader(tt.data), tt.format, tt.maxRows)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	t.Run("header only", func(t *testing.T) {
		rows, err := spreadsheet.ReadStudents(strings.NewReader("name,email\n"), spreadsheet.FormatCSV, 2)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := spreadsheet.ReadStudents(strings.NewReader("name,email\n"), spreadsheet.FormatXLSX, 0)
		assert.Error(t, err)
	})
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, spreadsheet.WriteTemplate(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Students"}, f.GetSheetList())

	got, err := f.GetRows("Students")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, student.ImportColumns, got[0])

	// the template is a valid import file
	rows, err := spreadsheet.ReadStudents(bytes.NewReader(buf.Bytes()), spreadsheet.FormatXLSX, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, student.NewStudent{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "1234567890",
		Grade:       "10th Grade",
		DateOfBirth: "2008-01-15",
		Address:     "123 Main St",
		ParentName:  "Jane Doe",
		ParentPhone: "0987654321",
		Status:      student.StatusActive,
	}, rows[0].Student)
	assert.Equal(t, 2, rows[0].Line)
}
