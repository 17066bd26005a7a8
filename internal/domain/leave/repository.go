package leave

import "context"

// RequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID returns the request, or nil when the id is unknown.
	GetByID(ctx context.Context, id int64) (*Request, error)

	Update(ctx context.Context, req Request) error

	FindAll(ctx context.Context) ([]Request, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]Request, error)
}

// PolicyStore holds the mutable leave-type → annual-allocation table.
// Implementations must synchronize reads and writes; the table is shared
// across requests.
type PolicyStore interface {
	// All returns a copy of the table.
	All(ctx context.Context) (map[string]int, error)

	// Allocation returns the allocated days for the named entry, 0 when the
	// entry does not exist.
	Allocation(ctx context.Context, name string) (int, error)

	// Set creates or overwrites one entry.
	Set(ctx context.Context, name string, days int) error
}
