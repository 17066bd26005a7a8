package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidStatus    = errors.New("invalid leave status value")
	ErrAlreadyProcessed = errors.New("leave request already processed")
)
