package dateutil

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when the end of a range precedes its start.
var ErrInvalidRange = errors.New("end date must not be before start date")

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC. Attendance and leave rows key on
// calendar dates, never on clock times.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days from start to end, both ends
// included. The same day counts as 1.
func DaysInclusive(start, end time.Time) (int, error) {
	s := DateOnly(start)
	e := DateOnly(end)
	if e.Before(s) {
		return 0, ErrInvalidRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// WorkedHours returns the fractional hours between check-in and check-out.
func WorkedHours(checkIn, checkOut time.Time) (float64, error) {
	if checkOut.Before(checkIn) {
		return 0, ErrInvalidRange
	}
	return checkOut.Sub(checkIn).Hours(), nil
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ParseDate parses a date string in "YYYY-MM-DD" format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
