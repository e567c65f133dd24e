package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/dateutil"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills explicit absent rows for every employee
// without an attendance record for yesterday. Weekend dates are skipped.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := dateutil.DateOnly(time.Now().UTC().AddDate(0, 0, -1))
	if dateutil.IsWeekend(yesterday) {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday.Format(dateutil.DateLayout))

	count, err := j.attendanceRepo.MarkAbsentForDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absent employees: %w", err)
	}

	slog.Info("Cron: Marked absent employees", "count", count)
	return nil
}
