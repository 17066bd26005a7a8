package leave

import "context"

// Service is the leave policy accountant: it owns the policy table, the
// request ledger, and the derived per-employee balance.
type LeaveService interface {
	// Policies returns the current policy table.
	Policies(ctx context.Context) (map[string]int, error)

	// SetPolicy overwrites one policy table entry.
	SetPolicy(ctx context.Context, req SetPolicyRequest) error

	// CreateRequest stores a new PENDING request. Fails with
	// ErrInvalidLeaveType when the type is outside the vocabulary.
	CreateRequest(ctx context.Context, req CreateRequestRequest) (Response, error)

	// UpdateStatus transitions a PENDING request to APPROVED or REJECTED.
	// The approver is recorded only on approval.
	UpdateStatus(ctx context.Context, id int64, status string, approverID *int64) (Response, error)

	List(ctx context.Context) ([]Response, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Response, error)

	// Balance returns max(0, allocated − used) where allocated sums the
	// Casual/Sick/Earned allocations and used sums the inclusive spans of
	// the employee's APPROVED requests.
	Balance(ctx context.Context, employeeID int64) (int, error)
}
