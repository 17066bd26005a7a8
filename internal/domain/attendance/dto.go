package attendance

// Response is the wire form of a Record. Status is serialized lower-case;
// check-in/check-out are local times of day.
type Response struct {
	ID           int64    `json:"id"`
	EmployeeID   int64    `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	HoursWorked  *float64 `json:"hours_worked,omitempty"`
	Status       string   `json:"status"`
	Notes        *string  `json:"notes,omitempty"`
}

// NewResponse maps a Record to its wire form. The employee name is resolved
// by the caller ("Unknown" when the directory has no entry).
func NewResponse(rec Record, employeeName string) Response {
	var checkOut *string
	if rec.CheckOut != nil {
		s := rec.CheckOut.Format("15:04:05")
		checkOut = &s
	}

	return Response{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: employeeName,
		Date:         rec.Date.Format("2006-01-02"),
		CheckIn:      rec.CheckIn.Format("15:04:05"),
		CheckOut:     checkOut,
		HoursWorked:  rec.HoursWorked,
		Status:       rec.Status.Lower(),
		Notes:        rec.Notes,
	}
}

// CheckInRequest identifies the employee clocking in.
type CheckInRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// CheckOutRequest identifies the employee clocking out.
type CheckOutRequest struct {
	EmployeeID int64 `json:"employee_id"`
}
