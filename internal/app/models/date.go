package models

import (
	"fmt"
	"time"

	"schedboard-service/internal/pkg/constvars"
)

// CalendarDate is the single calendar-day value type used across the slot
// engine. External representations (query params, upstream feed keys) are
// converted into it once at the boundary; everything past the boundary
// compares and maps by value.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := time.Parse(constvars.DateLayoutYMD, value)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse calendar date %q: %w", value, err)
	}
	return NewCalendarDate(t), nil
}

func TodayUTC() CalendarDate {
	return NewCalendarDate(time.Now().UTC())
}

func (d CalendarDate) String() string {
	return d.Time().Format(constvars.DateLayoutYMD)
}

// Time anchors the date at midnight UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// At combines the date with an "HH:MM" time-of-day into a UTC instant.
func (d CalendarDate) At(clock string) (time.Time, error) {
	t, err := time.Parse(constvars.TimeLayoutHM, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot time %q: %w", clock, err)
	}
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func (d CalendarDate) AddDays(days int) CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, days))
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// EndOfMonth returns the last day of the date's month, used by the
// booking-detail fetch whose range runs week start through month end.
func (d CalendarDate) EndOfMonth() CalendarDate {
	firstOfNext := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return NewCalendarDate(firstOfNext.AddDate(0, 0, -1))
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("calendar date must be a JSON string, got %s", raw)
	}
	parsed, err := ParseCalendarDate(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
