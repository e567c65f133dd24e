package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// Resolve flips a pending request to approved/rejected. The UPDATE is
	// conditional on status still being pending; when another resolution
	// already won, ErrLeaveAlreadyProcessed is returned.
	Resolve(ctx context.Context, id string, status LeaveRequestStatus, comment string, resolvedBy string, resolvedAt time.Time) (LeaveRequest, error)
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	// GetOrCreate returns the (employee, year) balance row, creating it
	// with the default grants when missing.
	GetOrCreate(ctx context.Context, employeeID string, year int) (LeaveBalance, error)

	// Debit atomically subtracts days from the column a leave type maps
	// to. With allowNegative false the UPDATE carries a floor guard and
	// ErrInsufficientBalance is returned when it would underflow.
	Debit(ctx context.Context, employeeID string, year int, leaveType LeaveType, days int, allowNegative bool) error
}
