package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	query := `
		SELECT id, first_name, last_name, department_id
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := e.db.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &emp, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := e.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// CountByDepartment implements employee.EmployeeRepository.
func (e *employeeRepository) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE department_id = $1
	`

	var n int64
	if err := e.db.QueryRow(ctx, query, departmentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees by department: %w", err)
	}
	return n, nil
}
