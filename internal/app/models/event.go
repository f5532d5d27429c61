package models

// CalendarEvent is a raw remote event record from the booking-detail feed.
type CalendarEvent struct {
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Creator   string `json:"creator"`
}

// EventBucket wraps the events listed under one date/time key.
type EventBucket struct {
	Events []CalendarEvent `json:"events"`
}

// BookingDetailFeed is the booking-detail response: date to time to events.
type BookingDetailFeed map[string]map[string]EventBucket

// BookingEventDetails is the structured form of a booking event summary.
// Fields degrade to "N/A" when the summary does not follow the
// "<kind> : <learner>(<jlid>) : <teacher>(<tuid>)" convention.
type BookingEventDetails struct {
	Kind        string `json:"kind"`
	LearnerName string `json:"learner_name"`
	LearnerID   string `json:"learner_id"`
	TeacherName string `json:"teacher_name"`
	TeacherUID  string `json:"teacher_uid"`
}

// AvailabilityEventDetails is the structured form of an availability
// record; no identifier extraction applies.
type AvailabilityEventDetails struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Creator   string `json:"creator"`
	Summary   string `json:"summary"`
}
