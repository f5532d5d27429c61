package requests

// BookClassRequest is the upstream book-class payload. One request is sent
// per selected student; schedule pairs are already UTC-converted.
type BookClassRequest struct {
	JLUID               string      `json:"jl_uid"`
	TeacherUID          string      `json:"teacher_uid"`
	PlatformCredentials string      `json:"platform_credentials"`
	ClassCount          int         `json:"class_count"`
	Schedule            [][2]string `json:"schedule"`
	Attendees           []string    `json:"attendees"`
	ClassType           string      `json:"class_type"`
	BookingType         string      `json:"booking_type"`
	Course              string      `json:"course,omitempty"`
	Recording           bool        `json:"recording,omitempty"`
	BatchName           string      `json:"batch_name,omitempty"`
	Tags                []string    `json:"tags,omitempty"`
}

// Controller-side draft requests.

type CreateBookingDraftRequest struct {
	BookingType string `json:"booking_type" validate:"required,oneof=Trial Paid"`
	TeacherUID  string `json:"teacher_uid" validate:"required"`
}

type AddScheduleEntryRequest struct {
	Date string `json:"date" validate:"required,calendar_date"`
	Time string `json:"time" validate:"required,slot_time"`
}

type AddStudentRequest struct {
	JetLearnerID string `json:"jetlearner_id" validate:"required"`
}

type AddAttendeesRequest struct {
	Attendees []string `json:"attendees" validate:"required,min=1"`
}

type SetPaidOptionsRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	ClassType  string   `json:"class_type" validate:"required,oneof=1:1 1:2 batch"`
	ClassCount int      `json:"class_count" validate:"required,gte=1"`
	BatchName  string   `json:"batch_name" validate:"omitempty"`
	Course     string   `json:"course" validate:"omitempty"`
	Recording  bool     `json:"recording"`
	Tags       []string `json:"tags" validate:"omitempty"`
}

type SubmitBookingRequest struct {
	Timezone string `json:"timezone" validate:"required,gmt_timezone"`
}
