package leave

import (
	"strings"
	"time"
)

// Type is the closed leave-category vocabulary a request may carry.
type Type string

const (
	TypeCasual    Type = "CASUAL"
	TypeSick      Type = "SICK"
	TypeEarned    Type = "EARNED"
	TypeUnpaid    Type = "UNPAID"
	TypeMaternity Type = "MATERNITY"
	TypePaternity Type = "PATERNITY"
)

// ParseType maps a case-insensitive string onto the Type enumeration.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeCasual:
		return TypeCasual, nil
	case TypeSick:
		return TypeSick, nil
	case TypeEarned:
		return TypeEarned, nil
	case TypeUnpaid:
		return TypeUnpaid, nil
	case TypeMaternity:
		return TypeMaternity, nil
	case TypePaternity:
		return TypePaternity, nil
	default:
		return "", ErrInvalidLeaveType
	}
}

func (t Type) Lower() string {
	return strings.ToLower(string(t))
}

// RequestStatus is the request lifecycle enumeration. A request is created
// PENDING and transitions exactly once to APPROVED or REJECTED.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// ParseDecision maps a case-insensitive string onto the two terminal
// statuses. PENDING is not a valid transition target.
func ParseDecision(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s RequestStatus) Lower() string {
	return strings.ToLower(string(s))
}

// Request is a leave request. Days is caller-supplied and deliberately not
// reconciled against the date span; balance math recomputes the span from
// the dates instead.
type Request struct {
	ID         int64
	EmployeeID int64
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Days       float64
	Reason     string
	Status     RequestStatus
	ApprovedBy *int64
	CreatedAt  time.Time
}

// SpanDays is the inclusive day count of [StartDate, EndDate].
func (r Request) SpanDays() int {
	return daysBetween(r.StartDate, r.EndDate) + 1
}

// daysBetween counts whole civil days from a to b, ignoring time-of-day
// and zone offsets. Both ends are pinned to UTC midnight before
// subtracting, so the difference is always an exact multiple of 24h; do
// not swap the normalization for the dates' own zones.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// Policy table entries. The general balance deliberately draws on the first
// three only; Maternity, Paternity and Compensatory Off are separate
// entitlements and never fold into it.
const (
	PolicyCasualLeave     = "Casual Leave"
	PolicySickLeave       = "Sick Leave"
	PolicyEarnedLeave     = "Earned Leave"
	PolicyMaternity       = "Maternity"
	PolicyPaternity       = "Paternity"
	PolicyCompensatoryOff = "Compensatory Off"
)

// DefaultPolicy returns the seed allocation table (days per year).
func DefaultPolicy() map[string]int {
	return map[string]int{
		PolicyCasualLeave:     12,
		PolicySickLeave:       10,
		PolicyEarnedLeave:     15,
		PolicyMaternity:       180,
		PolicyPaternity:       5,
		PolicyCompensatoryOff: 0,
	}
}
