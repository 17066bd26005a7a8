package postgresql

import (
	"context"
	"fmt"

	"github.com/nova-forge/hrms-backend-go/internal/domain/task"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// Count implements task.TaskRepository.
func (t *taskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

// CountByStatus implements task.TaskRepository.
func (t *taskRepository) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE status = $1
	`

	var n int64
	if err := t.db.QueryRow(ctx, query, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tasks by status: %w", err)
	}
	return n, nil
}

// CountOpenByAssignee implements task.TaskRepository.
func (t *taskRepository) CountOpenByAssignee(ctx context.Context, employeeID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE assigned_to = $1
		  AND status <> $2
	`

	var n int64
	if err := t.db.QueryRow(ctx, query, employeeID, string(task.StatusCompleted)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count open tasks by assignee: %w", err)
	}
	return n, nil
}
