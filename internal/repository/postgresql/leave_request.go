package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date, days, reason, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id
	`

	err := l.db.QueryRow(ctx, query,
		req.EmployeeID,
		string(req.Type),
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		string(req.Status),
		req.CreatedAt,
	).Scan(&req.ID)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id int64) (*leave.Request, error) {
	query := `
		SELECT id, employee_id, type, start_date, end_date, days, reason, status, approved_by, created_at
		FROM leave_requests
		WHERE id = $1
	`

	req, err := scanRequest(l.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return &req, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3
		WHERE id = $1
	`

	tag, err := l.db.Exec(ctx, query, req.ID, string(req.Status), req.ApprovedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// FindAll implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) FindAll(ctx context.Context) ([]leave.Request, error) {
	query := `
		SELECT id, employee_id, type, start_date, end_date, days, reason, status, approved_by, created_at
		FROM leave_requests
		ORDER BY created_at DESC
	`

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// FindByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) FindByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	query := `
		SELECT id, employee_id, type, start_date, end_date, days, reason, status, approved_by, created_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := l.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func scanRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	var leaveType, status string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &leaveType, &req.StartDate, &req.EndDate,
		&req.Days, &req.Reason, &status, &req.ApprovedBy, &req.CreatedAt,
	)
	if err != nil {
		return leave.Request{}, err
	}

	req.Type = leave.Type(leaveType)
	req.Status = leave.RequestStatus(status)
	return req, nil
}

func collectRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}
	return requests, nil
}
