package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetOrCreate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	// Insert-or-fetch in one round trip. The no-op DO UPDATE makes
	// RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO leave_balances (
			id, employee_id, year, earned_leave, sick_leave, casual_leave,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		ON CONFLICT (employee_id, year) DO UPDATE SET year = EXCLUDED.year
		RETURNING id, employee_id, year, earned_leave, sick_leave, casual_leave,
				  created_at, updated_at
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		employeeID, year,
		leave.DefaultEarnedLeave, leave.DefaultSickLeave, leave.DefaultCasualLeave,
	).Scan(
		&balance.ID, &balance.EmployeeID, &balance.Year,
		&balance.EarnedLeave, &balance.SickLeave, &balance.CasualLeave,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get or create leave balance: %w", err)
	}

	return balance, nil
}

// Debit implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Debit(ctx context.Context, employeeID string, year int, leaveType leave.LeaveType, days int, allowNegative bool) error {
	q := GetQuerier(ctx, r.db)

	column := leaveType.BalanceColumn()
	if column == "" {
		// Unpaid leave carries no balance
		return nil
	}

	// Column name comes from the LeaveType mapping, never from input
	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %s = %s - $1, updated_at = NOW()
		WHERE employee_id = $2 AND year = $3
	`, column, column)
	if !allowNegative {
		query += fmt.Sprintf(" AND %s >= $1", column)
	}

	result, err := q.Exec(ctx, query, days, employeeID, year)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}

	if result.RowsAffected() == 0 {
		if !allowNegative {
			return leave.ErrInsufficientBalance
		}
		return leave.ErrBalanceNotFound
	}

	return nil
}
