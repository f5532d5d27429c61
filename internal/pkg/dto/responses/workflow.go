package responses

type ScheduleEntryResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type BookingDraftResponse struct {
	DraftID     string                  `json:"draft_id"`
	State       string                  `json:"state"`
	BookingType string                  `json:"booking_type"`
	TeacherUID  string                  `json:"teacher_uid"`
	Entries     []ScheduleEntryResponse `json:"entries"`
	Students    []string                `json:"students"`
	Attendees   []string                `json:"attendees"`
	Subject     string                  `json:"subject,omitempty"`
	ClassType   string                  `json:"class_type,omitempty"`
	ClassCount  int                     `json:"class_count,omitempty"`
	BatchName   string                  `json:"batch_name,omitempty"`
	LastError   string                  `json:"last_error,omitempty"`
}

type CancellationResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type LeaveResponse struct {
	Message   string `json:"message"`
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
}
