package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
)

func TestPolicyStoreSeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := map[string]int{"Casual Leave": 12}
	store := NewPolicyStore(seed)

	seed["Casual Leave"] = 99

	days, err := store.Allocation(ctx, "Casual Leave")
	require.NoError(t, err)
	assert.Equal(t, 12, days)
}

func TestPolicyStoreAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewPolicyStore(map[string]int{"Sick Leave": 10})

	table, err := store.All(ctx)
	require.NoError(t, err)
	table["Sick Leave"] = 0

	days, err := store.Allocation(ctx, "Sick Leave")
	require.NoError(t, err)
	assert.Equal(t, 10, days)
}

func TestPolicyStoreUnknownTypeIsZero(t *testing.T) {
	store := NewPolicyStore(nil)

	days, err := store.Allocation(context.Background(), "Sabbatical")
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}

func TestPolicyStoreSet(t *testing.T) {
	ctx := context.Background()
	store := NewPolicyStore(leave.DefaultPolicy())

	require.NoError(t, store.Set(ctx, "Casual Leave", 20))

	days, err := store.Allocation(ctx, "Casual Leave")
	require.NoError(t, err)
	assert.Equal(t, 20, days)
}

func TestAttendanceRepositoryUniquePerDay(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, attendance.Record{EmployeeID: 1, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Record{EmployeeID: 1, Date: date, Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// A different employee or a different day is fine.
	_, err = repo.Create(ctx, attendance.Record{EmployeeID: 2, Date: date, Status: attendance.StatusPresent})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Record{EmployeeID: 1, Date: date.AddDate(0, 0, 1), Status: attendance.StatusPresent})
	assert.NoError(t, err)
}

func TestAttendanceRepositoryUpdateGuardsClosedRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, attendance.Record{EmployeeID: 1, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)

	checkOut := date.Add(17 * time.Hour)
	created.CheckOut = &checkOut
	require.NoError(t, repo.Update(ctx, created))

	err = repo.Update(ctx, created)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestLeaveRequestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()

	created, err := repo.Create(ctx, leave.Request{EmployeeID: 1, Type: leave.TypeCasual, Status: leave.StatusPending})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, leave.StatusPending, got.Status)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created.Status = leave.StatusApproved
	require.NoError(t, repo.Update(ctx, created))

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)

	err = repo.Update(ctx, leave.Request{ID: 999})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}
