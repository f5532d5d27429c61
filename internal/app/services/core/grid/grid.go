package grid

import (
	"fmt"

	"schedboard-service/internal/app/models"
)

// Granularity selects the time catalog density for a view. Callers must
// use one granularity consistently for a given view; the engine never
// mixes catalogs within one grid.
type Granularity string

const (
	GranularityHourly     Granularity = "hour"
	GranularityHalfHourly Granularity = "half_hour"
)

const DaysPerWeek = 7

// WeekDatesOf returns the Monday-first 7-day window containing the
// reference date. ISO weekday rules apply: a Sunday reference maps to the
// Monday six days prior.
func WeekDatesOf(reference models.CalendarDate) [DaysPerWeek]models.CalendarDate {
	weekday := int(reference.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := reference.AddDays(-(weekday - 1))

	var dates [DaysPerWeek]models.CalendarDate
	for i := range dates {
		dates[i] = monday.AddDays(i)
	}
	return dates
}

// CatalogTimes returns the fixed ordered catalog of schedulable times for
// one day: 24 slots hourly, 48 half-hourly.
func CatalogTimes(granularity Granularity) []string {
	step := 60
	if granularity == GranularityHalfHourly {
		step = 30
	}

	times := make([]string, 0, 24*60/step)
	for minutes := 0; minutes < 24*60; minutes += step {
		times = append(times, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return times
}
