package student_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
	"github.com/su-ri-ya/littlechampions/tests"
)

func row(line int, name, email, dob string) student.ImportRow {
	return student.RowFromValues(line, map[string]string{
		"name":        name,
		"email":       email,
		"phone":       "1234567890",
		"grade":       "10th Grade",
		"dateofbirth": dob,
		"address":     "123 Main St",
		"parentname":  "Jane Doe",
		"parentphone": "0987654321",
	})
}

func TestColumnKey(t *testing.T) {
	for _, h := range []string{"dateOfBirth", " Date of Birth ", "date_of_birth", "DATE-OF-BIRTH"} {
		assert.Equal(t, "dateofbirth", student.ColumnKey(h), h)
	}
}

func TestService_Import(t *testing.T) {
	core.NowFunc = fixedNow
	defer func() { core.NowFunc = nowFunc }()

	db := testutil.OpenDB(t, dummydb.WithSeed())
	svc := student.NewService(dummydb.NewStudentRepository(db), 10)

	rows := []student.ImportRow{
		row(2, "John Doe", "john@example.com", "2008-01-15"),
		row(3, "", "missing@example.com", "2008-01-15"),           // missing name
		row(4, "Johnny Doe", "JOHN@example.com", "2008-02-01"),    // same email as row 2
		row(5, "Emma Wilsen", "other@example.com", "2008-05-15"),  // seeded Emma Wilson, same birthday
		row(6, "Jane Roe", "jane@example.com", "2008-13-01"),      // bad date
		row(7, "Jane Roe", "jane@example.com", "2008-03-01"),
	}

	res, err := svc.Import(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 4, res.Skipped)

	require.Len(t, res.Students, 2)
	assert.Equal(t, "John Doe", res.Students[0].Name)
	assert.Equal(t, "2024-03-15", res.Students[0].EnrollmentDate)
	assert.Equal(t, student.StatusActive, res.Students[0].Status)
	assert.Equal(t, "Jane Roe", res.Students[1].Name)
	assert.Equal(t, 2, res.Students[0].Line)
	assert.Equal(t, 7, res.Students[1].Line)

	lines := make([]int, 0, len(res.Rejected))
	for _, r := range res.Rejected {
		lines = append(lines, r.Line)
		assert.NotEmpty(t, r.Reason)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, lines)

	all, _ := svc.QueryAll()
	assert.Len(t, all, 4)
}

func TestService_ImportTooManyRows(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := student.NewService(dummydb.NewStudentRepository(db), 1)

	_, err := svc.Import([]student.ImportRow{
		row(2, "John Doe", "john@example.com", "2008-01-15"),
		row(3, "Jane Roe", "jane@example.com", "2008-03-01"),
	})
	assert.Equal(t, student.ErrTooManyRows, err)

	all, _ := svc.QueryAll()
	assert.Empty(t, all)
}
