package postgresql

import (
	"context"
	"fmt"

	"github.com/nova-forge/hrms-backend-go/internal/domain/department"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// FindAll implements department.DepartmentRepository.
func (d *departmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		ORDER BY name
	`

	rows, err := d.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}

	return departments, nil
}

// Count implements department.DepartmentRepository.
func (d *departmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return n, nil
}
