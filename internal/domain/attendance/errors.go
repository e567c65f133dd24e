package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
