package models

// RemoteSlotSummary is the per-slot payload of the upstream summary feed.
type RemoteSlotSummary struct {
	Availability int    `json:"availability"`
	Bookings     int    `json:"bookings"`
	UID          string `json:"uid"`
}

// RemoteWeekSummary is the wire shape of the upstream feed: date key
// (YYYY-MM-DD) to time key (HH:MM) to counts. Treated as read-only input
// and replaced wholesale on every successful fetch, never patched.
type RemoteWeekSummary map[string]map[string]RemoteSlotSummary

// Lookup returns the remote entry for a slot, if the feed carries one.
func (s RemoteWeekSummary) Lookup(date CalendarDate, slotTime string) (RemoteSlotSummary, bool) {
	day, ok := s[date.String()]
	if !ok {
		return RemoteSlotSummary{}, false
	}
	entry, ok := day[slotTime]
	return entry, ok
}
