package memory

import (
	"context"

	"github.com/nova-forge/hrms-backend-go/internal/domain/department"
	"github.com/nova-forge/hrms-backend-go/internal/domain/document"
	"github.com/nova-forge/hrms-backend-go/internal/domain/employee"
	"github.com/nova-forge/hrms-backend-go/internal/domain/task"
)

// Read-only seeded stores for the directory-style collections the analytics
// aggregator counts over. They are immutable after construction, so no
// locking is needed.

type employeeRepository struct {
	employees []employee.Employee
}

func NewEmployeeRepository(employees []employee.Employee) employee.EmployeeRepository {
	return &employeeRepository{employees: employees}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(_ context.Context, id int64) (*employee.Employee, error) {
	for _, emp := range e.employees {
		if emp.ID == id {
			out := emp
			return &out, nil
		}
	}
	return nil, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(e.employees)), nil
}

// CountByDepartment implements employee.EmployeeRepository.
func (e *employeeRepository) CountByDepartment(_ context.Context, departmentID int64) (int64, error) {
	var n int64
	for _, emp := range e.employees {
		if emp.DepartmentID != nil && *emp.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

type departmentRepository struct {
	departments []department.Department
}

func NewDepartmentRepository(departments []department.Department) department.DepartmentRepository {
	return &departmentRepository{departments: departments}
}

// FindAll implements department.DepartmentRepository.
func (d *departmentRepository) FindAll(_ context.Context) ([]department.Department, error) {
	out := make([]department.Department, len(d.departments))
	copy(out, d.departments)
	return out, nil
}

// Count implements department.DepartmentRepository.
func (d *departmentRepository) Count(_ context.Context) (int64, error) {
	return int64(len(d.departments)), nil
}

// TaskSeed is one task row for the seeded task store.
type TaskSeed struct {
	AssignedTo int64
	Status     task.Status
}

type taskRepository struct {
	tasks []TaskSeed
}

func NewTaskRepository(tasks []TaskSeed) task.TaskRepository {
	return &taskRepository{tasks: tasks}
}

// Count implements task.TaskRepository.
func (t *taskRepository) Count(_ context.Context) (int64, error) {
	return int64(len(t.tasks)), nil
}

// CountByStatus implements task.TaskRepository.
func (t *taskRepository) CountByStatus(_ context.Context, status task.Status) (int64, error) {
	var n int64
	for _, seed := range t.tasks {
		if seed.Status == status {
			n++
		}
	}
	return n, nil
}

// CountOpenByAssignee implements task.TaskRepository.
func (t *taskRepository) CountOpenByAssignee(_ context.Context, employeeID int64) (int64, error) {
	var n int64
	for _, seed := range t.tasks {
		if seed.AssignedTo == employeeID && seed.Status != task.StatusCompleted {
			n++
		}
	}
	return n, nil
}

type documentRepository struct {
	statuses []document.Status
}

func NewDocumentRepository(statuses []document.Status) document.DocumentRepository {
	return &documentRepository{statuses: statuses}
}

// CountByStatus implements document.DocumentRepository.
func (d *documentRepository) CountByStatus(_ context.Context, status document.Status) (int64, error) {
	var n int64
	for _, s := range d.statuses {
		if s == status {
			n++
		}
	}
	return n, nil
}
