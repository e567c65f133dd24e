package attendance

import (
	"time"
)

// Attendance statuses. A single record exists per employee per calendar
// date; status is derived from the check-in/check-out pair.
const (
	StatusPresent = "present"
	StatusHalfDay = "half-day"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

// HalfDayThresholdHours is the worked-hours boundary below which a
// checked-out day is demoted to half-day.
const HalfDayThresholdHours = 4.0

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  *float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}

// Summary aggregates one employee's month of attendance.
type Summary struct {
	EmployeeID   string
	Month        int
	Year         int
	TotalDays    int
	PresentDays  int
	HalfDays     int
	AbsentDays   int
	LeaveDays    int
	AvgWorkHours float64
}
