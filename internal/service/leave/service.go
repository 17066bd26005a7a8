package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	leave.PolicyStore
	employee.EmployeeRepository
	clock clock.Clock
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	policyStore leave.PolicyStore,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: requestRepo,
		PolicyStore:            policyStore,
		EmployeeRepository:     employeeRepo,
		clock:                  clk,
	}
}

// Policies implements leave.LeaveService.
func (l *LeaveServiceImpl) Policies(ctx context.Context) (map[string]int, error) {
	table, err := l.PolicyStore.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy table: %w", err)
	}
	return table, nil
}

// SetPolicy implements leave.LeaveService.
func (l *LeaveServiceImpl) SetPolicy(ctx context.Context, req leave.SetPolicyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := l.PolicyStore.Set(ctx, req.Type, req.Days); err != nil {
		return fmt.Errorf("failed to update policy table: %w", err)
	}
	return nil
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	leaveType, err := leave.ParseType(req.Type)
	if err != nil {
		return leave.Response{}, err
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, l.clock.Location())
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, l.clock.Location())
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		Type:       leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		CreatedAt:  l.clock.Now(),
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l.toResponse(ctx, created), nil
}

// UpdateStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateStatus(ctx context.Context, id int64, status string, approverID *int64) (leave.Response, error) {
	decision, err := leave.ParseDecision(status)
	if err != nil {
		return leave.Response{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return leave.Response{}, leave.ErrRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	request.Status = decision
	// The approver is recorded on approval only; a rejection keeps the
	// field empty.
	if decision == leave.StatusApproved {
		request.ApprovedBy = approverID
	}

	if err := l.LeaveRequestRepository.Update(ctx, *request); err != nil {
		return leave.Response{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return l.toResponse(ctx, *request), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context) ([]leave.Response, error) {
	requests, err := l.LeaveRequestRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return l.toResponses(ctx, requests), nil
}

// ListByEmployee implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Response, error) {
	requests, err := l.LeaveRequestRepository.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return l.toResponses(ctx, requests), nil
}

// Balance implements leave.LeaveService. Used days are recomputed from the
// stored date spans of APPROVED requests, never from the caller-supplied
// Days field.
func (l *LeaveServiceImpl) Balance(ctx context.Context, employeeID int64) (int, error) {
	allocated := 0
	for _, name := range []string{leave.PolicyCasualLeave, leave.PolicySickLeave, leave.PolicyEarnedLeave} {
		days, err := l.PolicyStore.Allocation(ctx, name)
		if err != nil {
			return 0, fmt.Errorf("failed to read policy table: %w", err)
		}
		allocated += days
	}

	requests, err := l.LeaveRequestRepository.FindByEmployee(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	used := 0
	for _, req := range requests {
		if req.Status == leave.StatusApproved {
			used += req.SpanDays()
		}
	}

	balance := allocated - used
	if balance < 0 {
		balance = 0
	}
	return balance, nil
}

func (l *LeaveServiceImpl) toResponses(ctx context.Context, requests []leave.Request) []leave.Response {
	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, l.toResponse(ctx, req))
	}
	return responses
}

func (l *LeaveServiceImpl) toResponse(ctx context.Context, req leave.Request) leave.Response {
	var approvedByName *string
	if req.ApprovedBy != nil {
		name := l.employeeName(ctx, *req.ApprovedBy)
		approvedByName = &name
	}
	return leave.NewResponse(req, l.employeeName(ctx, req.EmployeeID), approvedByName)
}

func (l *LeaveServiceImpl) employeeName(ctx context.Context, id int64) string {
	emp, err := l.EmployeeRepository.GetByID(ctx, id)
	if err != nil || emp == nil {
		return "Unknown"
	}
	return emp.FullName()
}
