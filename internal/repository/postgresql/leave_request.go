package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, total_days, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.TotalDays,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type, lr.start_date, lr.end_date, lr.total_days,
			   lr.reason, lr.status, lr.admin_comment, lr.resolved_by, lr.resolved_at,
			   lr.created_at, lr.updated_at,
			   e.full_name AS employee_name,
			   e.email AS employee_email
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.Type, &request.StartDate, &request.EndDate, &request.TotalDays,
		&request.Reason, &request.Status, &request.AdminComment, &request.ResolvedBy, &request.ResolvedAt,
		&request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName, &request.EmployeeEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return request, nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	employeeFilter := filter
	employeeFilter.EmployeeID = &employeeID
	return r.List(ctx, employeeFilter)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.type, lr.start_date, lr.end_date, lr.total_days,
			   lr.reason, lr.status, lr.admin_comment, lr.resolved_by, lr.resolved_at,
			   lr.created_at, lr.updated_at,
			   e.full_name AS employee_name,
			   e.email AS employee_email
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var request leave.LeaveRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Type, &request.StartDate, &request.EndDate, &request.TotalDays,
			&request.Reason, &request.Status, &request.AdminComment, &request.ResolvedBy, &request.ResolvedAt,
			&request.CreatedAt, &request.UpdatedAt,
			&request.EmployeeName, &request.EmployeeEmail,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}

	return requests, total, nil
}

// Resolve implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Resolve(ctx context.Context, id string, status leave.LeaveRequestStatus, comment string, resolvedBy string, resolvedAt time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional on status still being pending: under concurrent
	// resolutions exactly one UPDATE matches
	query := `
		UPDATE leave_requests
		SET status = $2, admin_comment = $3, resolved_by = $4, resolved_at = $5, updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		RETURNING id, employee_id, type, start_date, end_date, total_days,
				  reason, status, admin_comment, resolved_by, resolved_at,
				  created_at, updated_at
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status, comment, resolvedBy, resolvedAt).Scan(
		&request.ID, &request.EmployeeID, &request.Type, &request.StartDate, &request.EndDate, &request.TotalDays,
		&request.Reason, &request.Status, &request.AdminComment, &request.ResolvedBy, &request.ResolvedAt,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// The row exists (callers check first) but is no longer pending
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to resolve leave request: %w", err)
	}

	return request, nil
}
