package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	t.Parallel()

	t.Run("same day counts as one", func(t *testing.T) {
		days, err := DaysInclusive(date(2024, 3, 11), date(2024, 3, 11))
		require.NoError(t, err)
		assert.Equal(t, 1, days)
	})

	t.Run("both ends included", func(t *testing.T) {
		days, err := DaysInclusive(date(2024, 3, 11), date(2024, 3, 15))
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("spans month boundary", func(t *testing.T) {
		days, err := DaysInclusive(date(2024, 2, 28), date(2024, 3, 1))
		require.NoError(t, err)
		assert.Equal(t, 3, days) // 2024 is a leap year
	})

	t.Run("clock times are ignored", func(t *testing.T) {
		start := time.Date(2024, 3, 11, 23, 50, 0, 0, time.UTC)
		end := time.Date(2024, 3, 12, 0, 10, 0, 0, time.UTC)
		days, err := DaysInclusive(start, end)
		require.NoError(t, err)
		assert.Equal(t, 2, days)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := DaysInclusive(date(2024, 3, 15), date(2024, 3, 11))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestWorkedHours(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	hours, err := WorkedHours(in, in.Add(7*time.Hour+30*time.Minute))
	require.NoError(t, err)
	assert.InDelta(t, 7.5, hours, 1e-9)

	_, err = WorkedHours(in, in.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWeekend(date(2024, 3, 9)))   // Saturday
	assert.True(t, IsWeekend(date(2024, 3, 10)))  // Sunday
	assert.False(t, IsWeekend(date(2024, 3, 11))) // Monday
}
