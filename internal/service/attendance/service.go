package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/clock"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/keyedmutex"
)

// Company-policy grace window, evaluated against the attendance zone:
// check-in opens at 09:00; strictly after 10:00 counts as LATE.
const (
	earliestCheckInHour = 9
	lateAfterHour       = 10
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock

	// checkLocks makes the check-existence-then-write sequence atomic per
	// employee for both check-in and check-out.
	checkLocks *keyedmutex.KeyedMutex
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		checkLocks:           keyedmutex.New(),
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID int64) (attendance.Response, error) {
	now := a.clock.Now()
	today := a.clock.Today()

	key := strconv.FormatInt(employeeID, 10)
	a.checkLocks.Lock(key)
	defer a.checkLocks.Unlock(key)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedIn
	}

	nineAM := time.Date(now.Year(), now.Month(), now.Day(), earliestCheckInHour, 0, 0, 0, now.Location())
	tenAM := time.Date(now.Year(), now.Month(), now.Day(), lateAfterHour, 0, 0, 0, now.Location())

	if now.Before(nineAM) {
		return attendance.Response{}, attendance.ErrCheckInTooEarly
	}

	status := attendance.StatusPresent
	if now.After(tenAM) {
		status = attendance.StatusLate
	}

	rec := attendance.Record{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    now,
		Status:     status,
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewResponse(created, a.employeeName(ctx, employeeID)), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID int64) (attendance.Response, error) {
	today := a.clock.Today()

	key := strconv.FormatInt(employeeID, 10)
	a.checkLocks.Lock(key)
	defer a.checkLocks.Unlock(key)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.Response{}, attendance.ErrNoCheckInRecord
	}
	if rec.CheckOut != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedOut
	}

	now := a.clock.Now()
	rec.CheckOut = &now

	// Whole minutes worked, kept as fractional hours.
	minutes := now.Sub(rec.CheckIn) / time.Minute
	hours := float64(minutes) / 60.0
	rec.HoursWorked = &hours

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.NewResponse(*rec, a.employeeName(ctx, employeeID)), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Response, error) {
	records, err := a.AttendanceRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return a.toResponses(ctx, records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Response, error) {
	records, err := a.AttendanceRepository.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return a.toResponses(ctx, records), nil
}

// Reset implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Reset(ctx context.Context) error {
	if err := a.AttendanceRepository.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset attendance records: %w", err)
	}
	return nil
}

func (a *AttendanceServiceImpl) toResponses(ctx context.Context, records []attendance.Record) []attendance.Response {
	responses := make([]attendance.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewResponse(rec, a.employeeName(ctx, rec.EmployeeID)))
	}
	return responses
}

func (a *AttendanceServiceImpl) employeeName(ctx context.Context, id int64) string {
	emp, err := a.EmployeeRepository.GetByID(ctx, id)
	if err != nil || emp == nil {
		return "Unknown"
	}
	return emp.FullName()
}
