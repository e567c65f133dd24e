package attendance

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

var validStatuses = []string{StatusPresent, StatusHalfDay, StatusAbsent, StatusLeave}

var validSortFields = []string{"date", "check_in", "check_out", "work_hours", "status", "created_at"}

// AttendanceResponse is the API shape of a single attendance record.
type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	EmployeeEmail *string  `json:"employee_email,omitempty"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in"`
	CheckOut      *string  `json:"check_out"`
	WorkHours     *float64 `json:"work_hours"`
	Status        string   `json:"status"`
}

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalItems int64                `json:"total_items"`
}

type SummaryResponse struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	HalfDays     int     `json:"half_days"`
	AbsentDays   int     `json:"absent_days"`
	LeaveDays    int     `json:"leave_days"`
	AvgWorkHours float64 `json:"avg_work_hours"`
}

// MyAttendanceFilter filters the authenticated employee's own records.
type MyAttendanceFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: present, half-day, absent, leave"})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.SortBy == "" {
		f.SortBy = "date"
	} else if !validator.IsInSlice(f.SortBy, validSortFields) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "invalid sort field"})
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	} else if !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter filters the admin listing.
type AttendanceFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Status       *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *AttendanceFilter) Validate() error {
	my := MyAttendanceFilter{
		Date:      f.Date,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
		Page:      f.Page,
		Limit:     f.Limit,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
	}
	err := my.Validate()

	f.Page = my.Page
	f.Limit = my.Limit
	f.SortBy = my.SortBy
	f.SortOrder = my.SortOrder

	return err
}

// SummaryRequest selects a month of attendance to aggregate.
type SummaryRequest struct {
	Month int
	Year  int
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
