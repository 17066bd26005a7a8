package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out rule violations
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrCheckInTooEarly   = errors.New("check-in is only allowed after 9:00 AM")
	ErrNoCheckInRecord   = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// General errors
	ErrInvalidStatus = errors.New("invalid attendance status value")
)
