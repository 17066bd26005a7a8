// Package task exposes the read-only slice of the task board the core
// consumes: counts by status and per-assignee open work.
package task

import (
	"context"
	"strings"
)

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReview     Status = "REVIEW"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses enumerates every status, in board order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}
}

// Label is the display form of a status: first letter upper-case, the rest
// lower-case, underscores replaced with spaces ("IN_PROGRESS" → "In progress").
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	rest := strings.ReplaceAll(strings.ToLower(string(s[1:])), "_", " ")
	return string(s[0]) + rest
}

type TaskRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// CountOpenByAssignee counts the employee's tasks not yet COMPLETED.
	CountOpenByAssignee(ctx context.Context, employeeID int64) (int64, error)
}
