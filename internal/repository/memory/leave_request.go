package memory

import (
	"context"
	"sync"

	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	mu       sync.Mutex
	requests []leave.Request
	nextID   int64
}

// NewLeaveRequestRepository returns an empty in-process leave request store.
func NewLeaveRequestRepository() leave.LeaveRequestRepository {
	return &leaveRequestRepository{nextID: 1}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req.ID = l.nextID
	l.nextID++
	l.requests = append(l.requests, req)
	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(_ context.Context, id int64) (*leave.Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, req := range l.requests {
		if req.ID == id {
			out := req
			return &out, nil
		}
	}
	return nil, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(_ context.Context, req leave.Request) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, existing := range l.requests {
		if existing.ID == req.ID {
			l.requests[i] = req
			return nil
		}
	}
	return leave.ErrRequestNotFound
}

// FindAll implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) FindAll(_ context.Context) ([]leave.Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]leave.Request, len(l.requests))
	copy(out, l.requests)
	return out, nil
}

// FindByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) FindByEmployee(_ context.Context, employeeID int64) ([]leave.Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []leave.Request
	for _, req := range l.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}
