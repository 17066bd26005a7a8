package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. Implementations backed by a unique
	// (employee_id, date) constraint return ErrAlreadyCheckedIn when a
	// record for that day already exists.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns the record for the employee on the given
	// civil date, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// Update persists check-out fields on an existing record.
	Update(ctx context.Context, rec Record) error

	FindAll(ctx context.Context) ([]Record, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]Record, error)

	// DeleteAll removes every attendance record. Irreversible.
	DeleteAll(ctx context.Context) error
}
