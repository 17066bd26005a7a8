package leave

import (
	"github.com/nova-forge/hrms-backend-go/internal/pkg/validator"
)

// CreateRequestRequest carries a new leave request. Days is trusted as-is
// and is not checked against the date span.
type CreateRequestRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       float64 `json:"days"`
	Reason     string  `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetPolicyRequest overwrites one policy table entry.
type SetPolicyRequest struct {
	Type string `json:"type"`
	Days int    `json:"days"`
}

func (r *SetPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Response is the wire form of a Request. Type and status are serialized
// lower-case; approved_by carries the approver's display name.
type Response struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         float64 `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// NewResponse maps a Request to its wire form. Names are resolved by the
// caller.
func NewResponse(req Request, employeeName string, approvedByName *string) Response {
	return Response{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		Type:         req.Type.Lower(),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Days:         req.Days,
		Reason:       req.Reason,
		Status:       req.Status.Lower(),
		ApprovedBy:   approvedByName,
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
