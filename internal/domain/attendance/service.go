package attendance

import "context"

// Service is the per-day attendance state machine:
// NoRecord → CheckedIn(PRESENT|LATE) → CheckedOut, terminal for the day.
type AttendanceService interface {
	// CheckIn creates today's record for the employee. Fails with
	// ErrAlreadyCheckedIn or ErrCheckInTooEarly.
	CheckIn(ctx context.Context, employeeID int64) (Response, error)

	// CheckOut closes today's record and derives worked hours. Fails with
	// ErrNoCheckInRecord or ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, employeeID int64) (Response, error)

	List(ctx context.Context) ([]Response, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Response, error)

	// Reset deletes every attendance record. Administrative use only.
	Reset(ctx context.Context) error
}
