package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/leave"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
	"github.com/su-ri-ya/littlechampions/tests"
)

func setup(t *testing.T) *leave.Service {
	db := testutil.OpenDB(t, dummydb.WithSeed())
	return leave.NewService(dummydb.NewLeaveRepository(db), dummydb.NewStudentRepository(db))
}

func TestService_Create(t *testing.T) {
	valid := leave.NewRequest{StudentID: "1", Reason: "Family wedding", FromDate: "2024-03-18", ToDate: "2024-03-20"}
	tests := []struct {
		name      string
		modify    func(nr *leave.NewRequest)
		wantField string
	}{
		{name: "valid", modify: func(nr *leave.NewRequest) {}},
		{name: "single day", modify: func(nr *leave.NewRequest) { nr.ToDate = nr.FromDate }},
		{name: "short reason", modify: func(nr *leave.NewRequest) { nr.Reason = "sick" }, wantField: "reason"},
		{name: "bad from date", modify: func(nr *leave.NewRequest) { nr.FromDate = "18-03-2024" }, wantField: "from_date"},
		{name: "ends before it starts", modify: func(nr *leave.NewRequest) { nr.ToDate = "2024-03-17" }, wantField: "to_date"},
		{name: "unknown student", modify: func(nr *leave.NewRequest) { nr.StudentID = "42" }, wantField: "student_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(t)
			nr := valid
			tt.modify(&nr)
			got, err := svc.Create(nr)
			all, _ := svc.QueryAll()

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, leave.StatusPending, got.Status)
				assert.Len(t, all, 1)
				return
			}
			require.Error(t, err)
			assert.Contains(t, core.FieldErrors(err, core.Translator), tt.wantField)
			assert.Empty(t, all)
		})
	}
}

func TestService_ApproveReject(t *testing.T) {
	svc := setup(t)
	first, err := svc.Create(leave.NewRequest{StudentID: "1", Reason: "Medical appointment", FromDate: "2024-03-18", ToDate: "2024-03-18"})
	require.NoError(t, err)
	second, err := svc.Create(leave.NewRequest{StudentID: "2", Reason: "Family travel", FromDate: "2024-03-19", ToDate: "2024-03-22"})
	require.NoError(t, err)

	got, err := svc.Approve(first.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)

	got, err = svc.Reject(second.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, got.Status)

	_, err = svc.Reject(first.ID)
	assert.Equal(t, leave.ErrNotPending, err)
	stored, _ := svc.GetByID(first.ID)
	assert.Equal(t, leave.StatusApproved, stored.Status)

	_, err = svc.Approve("42")
	assert.Equal(t, leave.ErrNotFound, err)

	t.Run("filter", func(t *testing.T) {
		tests := []struct {
			name   string
			filter leave.QueryFilter
			want   int
		}{
			{name: "all", want: 2},
			{name: "status", filter: leave.QueryFilter{Status: leave.StatusApproved}, want: 1},
			{name: "covering date", filter: leave.QueryFilter{Date: "2024-03-20"}, want: 1},
			{name: "student and date", filter: leave.QueryFilter{StudentID: "1", Date: "2024-03-20"}, want: 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := svc.Filter(tt.filter)
				require.NoError(t, err)
				assert.Len(t, got, tt.want)
			})
		}
	})
}
