package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/repository/memory"
)

var testZone = time.FixedZone("IST", 5*3600+1800)

// stepClock is a settable clock so a test can check in and check out at
// different instants.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (c *stepClock) Location() *time.Location {
	return c.Now().Location()
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, testZone)
}

func newTestService(now time.Time) (attendance.AttendanceService, *stepClock) {
	deptID := int64(1)
	clk := &stepClock{now: now}
	svc := NewAttendanceService(
		memory.NewAttendanceRepository(),
		memory.NewEmployeeRepository([]employee.Employee{
			{ID: 1, FirstName: "Aarav", LastName: "Sharma", DepartmentID: &deptID},
		}),
		clk,
	)
	return svc, clk
}

func TestCheckInBeforeNineRejected(t *testing.T) {
	svc, _ := newTestService(at(8, 59))

	_, err := svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrCheckInTooEarly)
}

func TestCheckInAtNineIsPresent(t *testing.T) {
	svc, _ := newTestService(at(9, 0))

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "Aarav Sharma", resp.EmployeeName)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "09:00:00", resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Nil(t, resp.HoursWorked)
}

func TestCheckInAtTenStillPresent(t *testing.T) {
	svc, _ := newTestService(at(10, 0))

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
}

func TestCheckInAfterTenIsLate(t *testing.T) {
	svc, _ := newTestService(at(10, 1))

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestCheckInTwiceRejected(t *testing.T) {
	svc, _ := newTestService(at(9, 30))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInUnknownEmployeeName(t *testing.T) {
	svc, _ := newTestService(at(9, 30))

	resp, err := svc.CheckIn(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", resp.EmployeeName)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _ := newTestService(at(17, 0))

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNoCheckInRecord)
}

func TestCheckOutDerivesHours(t *testing.T) {
	svc, clk := newTestService(at(9, 5))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	clk.Set(at(17, 35))
	resp, err := svc.CheckOut(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 8.5, *resp.HoursWorked, 0.0001)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "17:35:00", *resp.CheckOut)
}

func TestCheckOutDiscardsPartialMinutes(t *testing.T) {
	svc, clk := newTestService(at(9, 0))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	clk.Set(at(9, 30).Add(45 * time.Second))
	resp, err := svc.CheckOut(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 0.5, *resp.HoursWorked, 0.0001)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	svc, clk := newTestService(at(9, 0))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	clk.Set(at(17, 0))
	_, err = svc.CheckOut(ctx, 1)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestConcurrentCheckInSingleWinner(t *testing.T) {
	svc, _ := newTestService(at(9, 15))
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CheckIn(ctx, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, attendance.ErrAlreadyCheckedIn):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
}

func TestListByEmployee(t *testing.T) {
	svc, _ := newTestService(at(9, 0))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, 2)
	require.NoError(t, err)

	mine, err := svc.ListByEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResetClearsEverything(t *testing.T) {
	svc, _ := newTestService(at(9, 0))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The day is open again after a reset.
	_, err = svc.CheckIn(ctx, 1)
	assert.NoError(t, err)
}
