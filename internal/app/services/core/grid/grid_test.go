package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schedboard-service/internal/app/models"
)

func TestWeekDatesOf(t *testing.T) {
	t.Run("wednesday maps back to monday", func(t *testing.T) {
		// 2026-03-04 is a Wednesday.
		reference, err := models.ParseCalendarDate("2026-03-04")
		assert.NoError(t, err)

		dates := WeekDatesOf(reference)
		assert.Equal(t, "2026-03-02", dates[0].String())
		assert.Equal(t, "2026-03-08", dates[6].String())
	})

	t.Run("sunday belongs to the week starting six days earlier", func(t *testing.T) {
		reference, err := models.ParseCalendarDate("2026-03-08")
		assert.NoError(t, err)

		dates := WeekDatesOf(reference)
		assert.Equal(t, "2026-03-02", dates[0].String())
		assert.Equal(t, reference, dates[6])
	})

	t.Run("monday is its own week start", func(t *testing.T) {
		reference, err := models.ParseCalendarDate("2026-03-02")
		assert.NoError(t, err)

		dates := WeekDatesOf(reference)
		assert.Equal(t, reference, dates[0])
	})

	t.Run("week window crosses month boundary", func(t *testing.T) {
		// 2026-01-01 is a Thursday.
		reference, err := models.ParseCalendarDate("2026-01-01")
		assert.NoError(t, err)

		dates := WeekDatesOf(reference)
		assert.Equal(t, "2025-12-29", dates[0].String())
		assert.Equal(t, "2026-01-04", dates[6].String())
	})
}

func TestCatalogTimes(t *testing.T) {
	t.Run("hourly catalog has 24 entries", func(t *testing.T) {
		times := CatalogTimes(GranularityHourly)
		assert.Len(t, times, 24)
		assert.Equal(t, "00:00", times[0])
		assert.Equal(t, "13:00", times[13])
		assert.Equal(t, "23:00", times[23])
	})

	t.Run("half-hourly catalog has 48 entries", func(t *testing.T) {
		times := CatalogTimes(GranularityHalfHourly)
		assert.Len(t, times, 48)
		assert.Equal(t, "00:30", times[1])
		assert.Equal(t, "23:30", times[47])
	})
}
