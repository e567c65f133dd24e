package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the start of today's session for the caller
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut closes today's session and derives the final status
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetSummary aggregates the caller's month of attendance
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
