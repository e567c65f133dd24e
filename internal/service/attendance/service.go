package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/dateutil"
	"github.com/go-chi/jwtauth/v5"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Helper to get the caller's identity from JWT context
func identityFromContext(ctx context.Context) (employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now().UTC()
	today := dateutil.DateOnly(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now
	record := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	}

	// The unique (employee_id, date) index still backstops a concurrent
	// check-in between the lookup and the insert
	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now().UTC()
	today := dateutil.DateOnly(now)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	workHours, err := dateutil.WorkedHours(*record.CheckIn, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if workHours < attendance.HalfDayThresholdHours {
		status = attendance.StatusHalfDay
	}

	updated, err := s.attendanceRepo.CloseOut(ctx, record.ID, now, workHours, status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// The sort fields reach the query builder, so the filter is checked
	// here regardless of what the transport layer did.
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.GetMyAttendance(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return attendance.ListAttendanceResponse{
		Items:      mapAttendancesToResponses(records),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return attendance.ListAttendanceResponse{
		Items:      mapAttendancesToResponses(records),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// GetSummary implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetSummary(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary, err := s.attendanceRepo.Summarize(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		Month:        summary.Month,
		Year:         summary.Year,
		TotalDays:    summary.TotalDays,
		PresentDays:  summary.PresentDays,
		HalfDays:     summary.HalfDays,
		AbsentDays:   summary.AbsentDays,
		LeaveDays:    summary.LeaveDays,
		AvgWorkHours: summary.AvgWorkHours,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		EmployeeEmail: att.EmployeeEmail,
		Date:          att.Date.Format(dateutil.DateLayout),
		CheckIn:       timePtrToString(att.CheckIn),
		CheckOut:      timePtrToString(att.CheckOut),
		WorkHours:     att.WorkHours,
		Status:        att.Status,
	}
}

func mapAttendancesToResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, len(records))
	for i, att := range records {
		responses[i] = mapAttendanceToResponse(att)
	}
	return responses
}
