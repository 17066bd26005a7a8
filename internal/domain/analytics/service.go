package analytics

import "context"

// Service aggregates attendance, leave and collaborator counts into derived
// snapshots. Every call scans the underlying collections; results reflect
// the instant of the call and carry no cross-entity consistency guarantee.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	Reports(ctx context.Context) (ReportsData, error)
	EmployeeStats(ctx context.Context, employeeID int64) (EmployeeStats, error)
}
