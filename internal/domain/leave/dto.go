package leave

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

var validLeaveTypes = []string{
	string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeCasual), string(LeaveTypeUnpaid),
}

var validRequestStatuses = []string{
	string(LeaveRequestStatusPending), string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected),
}

// CreateLeaveRequestRequest is the submit payload.
type CreateLeaveRequestRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "leave type is required"})
	} else if !validator.IsInSlice(r.Type, validLeaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of: paid, sick, casual, unpaid"})
	}

	var startOK, endOK bool
	var start, end string
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	} else {
		startOK, start = true, r.StartDate
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	} else {
		endOK, end = true, r.EndDate
	}
	if startOK && endOK && end < start {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResolveLeaveRequestRequest carries an admin's approve/reject decision.
type ResolveLeaveRequestRequest struct {
	ID      string `json:"-"`
	Comment string `json:"admin_comment"`
}

func (r *ResolveLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "request id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AdminComment  *string `json:"admin_comment,omitempty"`
	ResolvedBy    *string `json:"resolved_by,omitempty"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ResolveLeaveRequestResponse is a resolved request plus whether the
// decision debited a balance. Only approvals of balance-backed types
// set the flag.
type ResolveLeaveRequestResponse struct {
	LeaveRequestResponse
	BalanceUpdated bool `json:"balance_updated"`
}

type ListLeaveRequestsResponse struct {
	Items      []LeaveRequestResponse `json:"items"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalItems int64                  `json:"total_items"`
}

type LeaveBalanceResponse struct {
	EmployeeID  string `json:"employee_id"`
	Year        int    `json:"year"`
	EarnedLeave int    `json:"earned_leave"`
	SickLeave   int    `json:"sick_leave"`
	CasualLeave int    `json:"casual_leave"`
}

// LeaveRequestFilter filters the admin listing.
type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string

	Page  int
	Limit int
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, validRequestStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: pending, approved, rejected"})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
