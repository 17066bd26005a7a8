package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The unique
// (employee_id, date) constraint backs the one-record-per-day invariant;
// a conflict surfaces as ErrAlreadyCheckedIn.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance_records (
			employee_id, date, check_in, status, notes
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id
	`

	err := a.db.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		string(rec.Status),
		rec.Notes,
	).Scan(&rec.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	query := `
		SELECT id, employee_id, date, check_in, check_out, hours_worked, status, notes
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	rec, err := scanRecord(a.db.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository. Only the check-out
// fields ever change after creation; the check_out IS NULL guard keeps a
// lost race from overwriting a closed record.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	query := `
		UPDATE attendance_records
		SET check_out = $2, hours_worked = $3, status = $4, notes = $5
		WHERE id = $1
		  AND check_out IS NULL
	`

	tag, err := a.db.Exec(ctx, query, rec.ID, rec.CheckOut, rec.HoursWorked, string(rec.Status), rec.Notes)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}

// FindAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindAll(ctx context.Context) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_id, date, check_in, check_out, hours_worked, status, notes
		FROM attendance_records
		ORDER BY date, employee_id
	`

	rows, err := a.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// FindByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_id, date, check_in, check_out, hours_worked, status, notes
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := a.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteAll(ctx context.Context) error {
	if _, err := a.db.Exec(ctx, `DELETE FROM attendance_records`); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status string

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.HoursWorked, &status, &rec.Notes,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	rec.Status = attendance.Status(status)
	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}
