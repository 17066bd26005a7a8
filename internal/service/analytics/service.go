package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nova-forge/hrms-backend-go/internal/domain/analytics"
	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/domain/department"
	"github.com/nova-forge/hrms-backend-go/internal/domain/document"
	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
	"github.com/nova-forge/hrms-backend-go/internal/domain/task"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/clock"
)

// trendDays is the window of the attendance trend: the 5 calendar days
// ending today, oldest first.
const trendDays = 5

type AnalyticsServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	leaveService   leave.LeaveService
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	taskRepo       task.TaskRepository
	documentRepo   document.DocumentRepository
	clock          clock.Clock
}

func NewAnalyticsService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	leaveService leave.LeaveService,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	taskRepo task.TaskRepository,
	documentRepo document.DocumentRepository,
	clk clock.Clock,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		leaveService:   leaveService,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		taskRepo:       taskRepo,
		documentRepo:   documentRepo,
		clock:          clk,
	}
}

// Dashboard implements analytics.AnalyticsService. Counts are gathered in
// parallel; concurrent writes may land between two counts, which is the
// accepted consistency model for snapshots.
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context) (analytics.DashboardStats, error) {
	today := s.clock.Today()

	var stats analytics.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		stats.TotalEmployees = n
		return nil
	})

	g.Go(func() error {
		n, err := s.departmentRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count departments: %w", err)
		}
		stats.TotalDepartments = n
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.FindAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to scan attendance records: %w", err)
		}
		var present int64
		for _, rec := range records {
			if sameDay(rec.Date, today) && rec.Status == attendance.StatusPresent {
				present++
			}
		}
		stats.PresentToday = present
		return nil
	})

	g.Go(func() error {
		requests, err := s.leaveRepo.FindAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to scan leave requests: %w", err)
		}
		var onLeave, pending int64
		for _, req := range requests {
			if req.Status == leave.StatusApproved && spanContains(req, today) {
				onLeave++
			}
			if req.Status == leave.StatusPending {
				pending++
			}
		}
		stats.OnLeaveToday = onLeave
		stats.PendingLeaveRequests = pending
		return nil
	})

	g.Go(func() error {
		n, err := s.documentRepo.CountByStatus(gCtx, document.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending documents: %w", err)
		}
		stats.PendingDocuments = n
		return nil
	})

	g.Go(func() error {
		completed, err := s.taskRepo.CountByStatus(gCtx, task.StatusCompleted)
		if err != nil {
			return fmt.Errorf("failed to count completed tasks: %w", err)
		}
		total, err := s.taskRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		stats.CompletedTasks = completed
		stats.TotalTasks = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.DashboardStats{}, err
	}

	return stats, nil
}

// Reports implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) Reports(ctx context.Context) (analytics.ReportsData, error) {
	today := s.clock.Today()

	records, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		return analytics.ReportsData{}, fmt.Errorf("failed to scan attendance records: %w", err)
	}

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return analytics.ReportsData{}, fmt.Errorf("failed to count employees: %w", err)
	}

	// Attendance trend. Absent is approximated as everyone without a
	// present/late record that day; employees on approved leave are not
	// excluded.
	trend := make([]analytics.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		var present, late int64
		for _, rec := range records {
			if !sameDay(rec.Date, date) {
				continue
			}
			switch rec.Status {
			case attendance.StatusPresent:
				present++
			case attendance.StatusLate:
				late++
			}
		}

		absent := totalEmployees - present - late
		if absent < 0 {
			absent = 0
		}

		trend = append(trend, analytics.TrendPoint{
			Name:    date.Weekday().String()[:3],
			Present: present,
			Late:    late,
			Absent:  absent,
		})
	}

	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return analytics.ReportsData{}, fmt.Errorf("failed to list departments: %w", err)
	}

	departmentDistribution := make([]analytics.ChartPoint, 0, len(departments))
	for _, dept := range departments {
		n, err := s.employeeRepo.CountByDepartment(ctx, dept.ID)
		if err != nil {
			return analytics.ReportsData{}, fmt.Errorf("failed to count employees in department: %w", err)
		}
		departmentDistribution = append(departmentDistribution, analytics.ChartPoint{
			Name:  dept.Name,
			Value: n,
		})
	}

	statuses := task.Statuses()
	taskStatusDistribution := make([]analytics.ChartPoint, 0, len(statuses))
	for _, status := range statuses {
		n, err := s.taskRepo.CountByStatus(ctx, status)
		if err != nil {
			return analytics.ReportsData{}, fmt.Errorf("failed to count tasks by status: %w", err)
		}
		taskStatusDistribution = append(taskStatusDistribution, analytics.ChartPoint{
			Name:  status.Label(),
			Value: n,
		})
	}

	return analytics.ReportsData{
		AttendanceTrend:        trend,
		DepartmentDistribution: departmentDistribution,
		TaskStatusDistribution: taskStatusDistribution,
	}, nil
}

// EmployeeStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) EmployeeStats(ctx context.Context, employeeID int64) (analytics.EmployeeStats, error) {
	records, err := s.attendanceRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return analytics.EmployeeStats{}, fmt.Errorf("failed to scan attendance records: %w", err)
	}

	var present int64
	for _, rec := range records {
		if rec.Status == attendance.StatusPresent {
			present++
		}
	}

	// No history counts as a perfect rate.
	rate := 100.0
	if len(records) > 0 {
		rate = roundToTenth(float64(present) / float64(len(records)) * 100)
	}

	balance, err := s.leaveService.Balance(ctx, employeeID)
	if err != nil {
		return analytics.EmployeeStats{}, fmt.Errorf("failed to compute leave balance: %w", err)
	}

	pendingTasks, err := s.taskRepo.CountOpenByAssignee(ctx, employeeID)
	if err != nil {
		return analytics.EmployeeStats{}, fmt.Errorf("failed to count open tasks: %w", err)
	}

	return analytics.EmployeeStats{
		AttendanceRate: rate,
		// TODO: derive on-time arrival and average work hours from the
		// attendance records instead of these placeholders.
		OnTimeArrival: 90.0,
		AvgWorkHours:  8.5,
		LeaveBalance:  balance,
		PendingTasks:  pendingTasks,
	}, nil
}

// spanContains tests inclusive containment of day in [StartDate, EndDate]
// via the open-interval form startDate < day+1 && endDate > day-1. All
// three dates are normalized to civil days first so storage zone does not
// leak into the comparison.
func spanContains(req leave.Request, day time.Time) bool {
	d := civilDay(day)
	return civilDay(req.StartDate).Before(d.AddDate(0, 0, 1)) && civilDay(req.EndDate).After(d.AddDate(0, 0, -1))
}

func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
