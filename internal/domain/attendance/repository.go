package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The table carries a unique
	// (employee_id, date) index; a violation surfaces as
	// ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// date. Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CloseOut sets check-out, worked hours and the derived status
	CloseOut(ctx context.Context, id string, checkOut time.Time, workHours float64, status string) (Attendance, error)

	// GetMyAttendance retrieves records for a specific employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// List retrieves records with filters and pagination (admin)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Summarize aggregates one employee's records for a month
	Summarize(ctx context.Context, employeeID string, month, year int) (Summary, error)

	// MarkAbsentForDate inserts absent rows for every employee without a
	// record on the given date; returns the number of rows inserted
	MarkAbsentForDate(ctx context.Context, date time.Time) (int64, error)
}
