package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/exceptions"
)

var gmtOffsetPattern = regexp.MustCompile(constvars.RegexGMTOffset)

// GMTOffset is a fixed display offset parsed from a timezone descriptor.
type GMTOffset struct {
	Hours   int
	Minutes int
	Sign    int
}

func (o GMTOffset) Duration() time.Duration {
	return time.Duration(o.Sign) * (time.Duration(o.Hours)*time.Hour + time.Duration(o.Minutes)*time.Minute)
}

// ParseGMTOffset extracts the fixed offset from a descriptor such as
// "(GMT+05:30) Asia/Kolkata". Every entry of the upstream timezone list
// must parse; anything else is a fatal input error for the caller, never
// silently defaulted.
func ParseGMTOffset(descriptor string) (GMTOffset, error) {
	match := gmtOffsetPattern.FindStringSubmatch(descriptor)
	if match == nil {
		return GMTOffset{}, exceptions.ErrMalformedTimezone(fmt.Errorf("no GMT offset in %q", descriptor))
	}

	sign := 1
	if match[1] == "-" {
		sign = -1
	}
	hours, err := strconv.Atoi(match[2])
	if err != nil {
		return GMTOffset{}, exceptions.ErrMalformedTimezone(err)
	}
	minutes, err := strconv.Atoi(match[3])
	if err != nil {
		return GMTOffset{}, exceptions.ErrMalformedTimezone(err)
	}

	return GMTOffset{Hours: hours, Minutes: minutes, Sign: sign}, nil
}

// ToDisplay renders a UTC-anchored slot key in the descriptor's offset and
// returns the wall-clock time of day only. The converted instant may fall
// on the previous or next calendar day; callers needing the date use
// ToDisplayDate.
func ToDisplay(date models.CalendarDate, utcTime, descriptor string) (string, error) {
	_, displayTime, err := ToDisplayDate(date, utcTime, descriptor)
	return displayTime, err
}

// ToDisplayDate is ToDisplay including the rolled display date.
func ToDisplayDate(date models.CalendarDate, utcTime, descriptor string) (models.CalendarDate, string, error) {
	offset, err := ParseGMTOffset(descriptor)
	if err != nil {
		return models.CalendarDate{}, "", err
	}

	instant, err := date.At(utcTime)
	if err != nil {
		return models.CalendarDate{}, "", exceptions.ErrCannotParseTime(err)
	}

	local := instant.Add(offset.Duration())
	return models.NewCalendarDate(local), local.Format(constvars.TimeLayoutHM), nil
}

// ToUTC converts a local wall-clock (date, time) pair back to the
// UTC-anchored slot key, crossing day, month and year boundaries in either
// direction as the offset demands.
func ToUTC(localDate models.CalendarDate, localTime, descriptor string) (models.CalendarDate, string, error) {
	offset, err := ParseGMTOffset(descriptor)
	if err != nil {
		return models.CalendarDate{}, "", err
	}

	instant, err := localDate.At(localTime)
	if err != nil {
		return models.CalendarDate{}, "", exceptions.ErrCannotParseTime(err)
	}

	utc := instant.Add(-offset.Duration())
	return models.NewCalendarDate(utc), utc.Format(constvars.TimeLayoutHM), nil
}
