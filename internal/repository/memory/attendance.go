package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	mu      sync.Mutex
	records []attendance.Record
	nextID  int64
}

// NewAttendanceRepository returns an empty in-process attendance store. It
// enforces the same one-record-per-day constraint the database does.
func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepository{nextID: 1}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.records {
		if existing.EmployeeID == rec.EmployeeID && sameCivilDay(existing.Date, rec.Date) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
	}

	rec.ID = a.nextID
	a.nextID++
	a.records = append(a.records, rec)
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, rec := range a.records {
		if rec.EmployeeID == employeeID && sameCivilDay(rec.Date, date) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(_ context.Context, rec attendance.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, existing := range a.records {
		if existing.ID == rec.ID {
			if existing.CheckOut != nil {
				return attendance.ErrAlreadyCheckedOut
			}
			a.records[i] = rec
			return nil
		}
	}
	return attendance.ErrNoCheckInRecord
}

// FindAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindAll(_ context.Context) ([]attendance.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]attendance.Record, len(a.records))
	copy(out, a.records)
	return out, nil
}

// FindByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindByEmployee(_ context.Context, employeeID int64) ([]attendance.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []attendance.Record
	for _, rec := range a.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteAll(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = nil
	return nil
}

func sameCivilDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
