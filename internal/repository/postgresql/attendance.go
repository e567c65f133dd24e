package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const uniqueViolationCode = "23505"

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, work_hours, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.WorkHours,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		// Unique (employee_id, date) index: a concurrent check-in won
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, work_hours, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkHours, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CloseOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseOut(ctx context.Context, id string, checkOut time.Time, workHours float64, status string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2, work_hours = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, date, check_in, check_out, work_hours, status,
				  created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, checkOut, workHours, status).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkHours, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close out attendance: %w", err)
	}

	return att, nil
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	// Sort column is validated upstream against an allow-list
	query := fmt.Sprintf(`
		SELECT id, employee_id, date, check_in, check_out, work_hours, status,
			   created_at, updated_at
		FROM attendances
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, filter.SortBy, filter.SortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkHours, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}

	return records, total, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.work_hours, a.status,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name,
			   e.email AS employee_email
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.%s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, filter.SortBy, filter.SortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkHours, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeEmail,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}

	return records, total, nil
}

// Summarize implements attendance.AttendanceRepository.
func (a *attendanceRepository) Summarize(ctx context.Context, employeeID string, month, year int) (attendance.Summary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) AS total_days,
			COUNT(*) FILTER (WHERE status = 'present') AS present_days,
			COUNT(*) FILTER (WHERE status = 'half-day') AS half_days,
			COUNT(*) FILTER (WHERE status = 'absent') AS absent_days,
			COUNT(*) FILTER (WHERE status = 'leave') AS leave_days,
			COALESCE(AVG(work_hours) FILTER (WHERE work_hours IS NOT NULL), 0) AS avg_work_hours
		FROM attendances
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
	`

	summary := attendance.Summary{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	}
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.TotalDays,
		&summary.PresentDays,
		&summary.HalfDays,
		&summary.AbsentDays,
		&summary.LeaveDays,
		&summary.AvgWorkHours,
	)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return summary, nil
}

// MarkAbsentForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkAbsentForDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	// ON CONFLICT keeps the job idempotent against concurrent runs
	query := `
		INSERT INTO attendances (id, employee_id, date, status, created_at, updated_at)
		SELECT uuidv7(), e.id, $1, 'absent', NOW(), NOW()
		FROM employees e
		WHERE NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absent for date: %w", err)
	}

	return tag.RowsAffected(), nil
}
