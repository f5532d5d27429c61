package requests

// LeaveApplicationRequest is the upstream leave payload: two [date, time]
// pairs plus teacher identity and reason.
type LeaveApplicationRequest struct {
	TeacherEmail string    `json:"teacher_email"`
	Start        [2]string `json:"start"`
	End          [2]string `json:"end"`
	Reason       string    `json:"reason"`
	TeacherID    string    `json:"teacher_id"`
}

// ApplyLeaveRequest is the controller-side leave form.
type ApplyLeaveRequest struct {
	TeacherID    string `json:"teacher_id" validate:"required"`
	TeacherEmail string `json:"teacher_email" validate:"required,email"`
	StartDate    string `json:"start_date" validate:"required,calendar_date"`
	StartTime    string `json:"start_time" validate:"omitempty,slot_time"`
	EndDate      string `json:"end_date" validate:"required,calendar_date"`
	EndTime      string `json:"end_time" validate:"omitempty,slot_time"`
	Reason       string `json:"reason" validate:"required"`
}
