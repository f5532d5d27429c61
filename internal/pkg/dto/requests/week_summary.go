package requests

// WeekSummaryRequest is the upstream summary-fetch filter. Type is set to
// "Availability" exactly when neither a teacher nor a learner filter is
// present; either filter suppresses the discriminator.
type WeekSummaryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Timezone  string `json:"timezone"`
	TeacherID string `json:"teacherid,omitempty"`
	Email     string `json:"email,omitempty"`
	JLID      string `json:"jlid,omitempty"`
	Type      string `json:"type,omitempty"`
}

func (r *WeekSummaryRequest) HasEntityFilter() bool {
	return r.TeacherID != "" || r.JLID != ""
}

// FetchWeekGridRequest is the controller-side query for the resolved grid.
type FetchWeekGridRequest struct {
	Date        string `json:"date" validate:"required,calendar_date"`
	Timezone    string `json:"timezone" validate:"required,gmt_timezone"`
	Granularity string `json:"granularity" validate:"omitempty,oneof=hour half_hour"`
	TeacherID   string `json:"teacherid" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	JLID        string `json:"jlid" validate:"omitempty"`
	// CandidateUID scopes resolution to one teacher while a booking draft
	// has that teacher selected. Slots the candidate does not cover render
	// neutral regardless of other teachers' availability.
	CandidateUID string `json:"candidate_uid" validate:"omitempty"`
}

// FetchSlotEventsRequest is the controller-side query for the slot detail
// popup list.
type FetchSlotEventsRequest struct {
	Date       string `json:"date" validate:"required,calendar_date"`
	Time       string `json:"time" validate:"required,slot_time"`
	TeacherUID string `json:"teacher_uid" validate:"omitempty"`
	Timezone   string `json:"timezone" validate:"required,gmt_timezone"`
	Page       int    `json:"page" validate:"omitempty,gte=1"`
	PageSize   int    `json:"page_size" validate:"omitempty,gte=1,lte=100"`
}
