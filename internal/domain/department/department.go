// Package department exposes the read-only slice of department data the
// core consumes.
package department

import "context"

type Department struct {
	ID   int64
	Name string
}

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]Department, error)
	Count(ctx context.Context) (int64, error)
}
