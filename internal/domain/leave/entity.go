package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

// BalanceColumn maps a leave type to the balance column it debits.
// Unpaid leave maps to the empty string and never touches balances.
func (t LeaveType) BalanceColumn() string {
	switch t {
	case LeaveTypePaid:
		return "earned_leave"
	case LeaveTypeSick:
		return "sick_leave"
	case LeaveTypeCasual:
		return "casual_leave"
	default:
		return ""
	}
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string

	Status       LeaveRequestStatus
	AdminComment *string
	ResolvedBy   *string
	ResolvedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}

// Default yearly balances granted when an employee's balance row for a
// year is first touched.
const (
	DefaultEarnedLeave = 18
	DefaultSickLeave   = 12
	DefaultCasualLeave = 8
)

// LeaveBalance entity, one row per (employee, year)
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Year       int

	EarnedLeave int
	SickLeave   int
	CasualLeave int

	CreatedAt time.Time
	UpdatedAt time.Time
}
