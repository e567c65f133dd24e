package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	truncate(t, db, "attendances", "employees")

	repo := postgresql.NewAttendanceRepository(db)
	empID := seedEmployee(t, db, "Asha Verma", "asha@example.com", false)
	ctx := context.Background()

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(9 * time.Hour)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: empID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// The unique (employee_id, date) index surfaces as a domain error
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: empID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_CloseOut(t *testing.T) {
	db := setupTestDB(t)
	truncate(t, db, "attendances", "employees")

	repo := postgresql.NewAttendanceRepository(db)
	empID := seedEmployee(t, db, "Ravi Nair", "ravi@example.com", false)
	ctx := context.Background()

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(9 * time.Hour)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: empID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	checkOut := checkIn.Add(3 * time.Hour)
	updated, err := repo.CloseOut(ctx, created.ID, checkOut, 3.0, attendance.StatusHalfDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, updated.Status)
	require.NotNil(t, updated.WorkHours)
	assert.InDelta(t, 3.0, *updated.WorkHours, 1e-9)

	_, err = repo.CloseOut(ctx, "00000000-0000-0000-0000-000000000000", checkOut, 3.0, attendance.StatusHalfDay)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_MarkAbsentForDate(t *testing.T) {
	db := setupTestDB(t)
	truncate(t, db, "attendances", "employees")

	repo := postgresql.NewAttendanceRepository(db)
	withRecord := seedEmployee(t, db, "Asha Verma", "asha@example.com", false)
	seedEmployee(t, db, "Ravi Nair", "ravi@example.com", false)
	seedEmployee(t, db, "Meera Pillai", "meera@example.com", true)
	ctx := context.Background()

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(9 * time.Hour)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: withRecord,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	// Only the two employees without a record for the date get a row
	count, err := repo.MarkAbsentForDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Idempotent on re-run
	count, err = repo.MarkAbsentForDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	existing, err := repo.GetByEmployeeAndDate(ctx, withRecord, date)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, attendance.StatusPresent, existing.Status)
}
