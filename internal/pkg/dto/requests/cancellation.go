package requests

// CancelClassRequest is the upstream cancellation payload for a booked
// class. Identifiers come from the event summary token scan; the
// timestamp is UTC in DD-MM-YYYY HH:MM form.
type CancelClassRequest struct {
	CancellationDatetime string `json:"cancellation_datetime"`
	JLUID                string `json:"jl_uid"`
	TLID                 string `json:"tlid"`
	Summary              string `json:"summary"`
	CancellationType     string `json:"cancellation_type"`
}

// CancelAvailabilityRequest is the upstream payload for freeing an
// availability slot; no identifier extraction applies.
type CancelAvailabilityRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	TeacherUID string `json:"teacher_uid"`
	Timezone   string `json:"timezone"`
	Reason     string `json:"reason"`
}

// CancelBookingRequest is the controller-side cancellation request.
type CancelBookingRequest struct {
	Reason    string `json:"reason" validate:"required"`
	Summary   string `json:"summary" validate:"required"`
	StartTime string `json:"start_time" validate:"omitempty"`
}

type CancelAvailabilitySlotRequest struct {
	Reason     string `json:"reason" validate:"required"`
	Date       string `json:"date" validate:"required,calendar_date"`
	Time       string `json:"time" validate:"required,slot_time"`
	TeacherUID string `json:"teacher_uid" validate:"required"`
	Timezone   string `json:"timezone" validate:"required,gmt_timezone"`
}
