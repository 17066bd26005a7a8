// Package employee exposes the read-only slice of the employee directory
// the core consumes. Employee CRUD itself lives outside this core.
package employee

import "context"

type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	DepartmentID *int64
}

// FullName is the display name used in attendance and leave responses.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmployeeRepository interface {
	// GetByID returns the employee, or nil when the id is unknown.
	GetByID(ctx context.Context, id int64) (*Employee, error)

	Count(ctx context.Context) (int64, error)

	// CountByDepartment counts employees assigned to the department.
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
}
