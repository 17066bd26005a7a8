package attendance

import (
	"strings"
	"time"
)

// Status is the closed presence enumeration for a day's record. Check-in
// only ever produces PRESENT or LATE; the remaining values are set by
// external processes (leave sync, manual correction).
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
	StatusHalfDay Status = "HALF_DAY"
)

// ParseStatus maps a case-insensitive string onto the Status enumeration.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPresent:
		return StatusPresent, nil
	case StatusLate:
		return StatusLate, nil
	case StatusAbsent:
		return StatusAbsent, nil
	case StatusOnLeave:
		return StatusOnLeave, nil
	case StatusHalfDay:
		return StatusHalfDay, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Lower is the wire form of the status.
func (s Status) Lower() string {
	return strings.ToLower(string(s))
}

// Record is one employee's attendance for one civil day. At most one record
// exists per (EmployeeID, Date); Date is midnight in the attendance zone.
// CheckOut and HoursWorked stay nil until check-out, after which the record
// is never mutated again.
type Record struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	CheckIn     time.Time
	CheckOut    *time.Time
	HoursWorked *float64
	Status      Status
	Notes       *string
}
