package leaves

import (
	"errors"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/exceptions"
)

// LeaveForm accumulates a leave application. Field setters keep the window
// consistent as it is edited: moving the start past a chosen end clears
// the end rather than leaving an inverted range behind.
type LeaveForm struct {
	TeacherID    string
	TeacherEmail string
	StartDate    models.CalendarDate
	StartTime    string
	EndDate      models.CalendarDate
	EndTime      string
	Reason       string
}

func NewLeaveForm(teacherID, teacherEmail string) *LeaveForm {
	form := &LeaveForm{TeacherID: teacherID, TeacherEmail: teacherEmail}
	form.ResetTimes()
	return form
}

// ResetTimes restores the whole-day defaults.
func (f *LeaveForm) ResetTimes() {
	f.StartTime = constvars.LeaveDefaultStartTime
	f.EndTime = constvars.LeaveDefaultEndTime
}

// SetStartDate moves the window start. An end date that the new start
// would invert is cleared so the user re-picks it.
func (f *LeaveForm) SetStartDate(date models.CalendarDate) {
	f.StartDate = date
	if !f.EndDate.IsZero() && f.EndDate.Before(date) {
		f.EndDate = models.CalendarDate{}
	}
}

func (f *LeaveForm) SetEndDate(date models.CalendarDate) error {
	if !f.StartDate.IsZero() && date.Before(f.StartDate) {
		return exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientLeaveEndBeforeStart))
	}
	f.EndDate = date
	return nil
}

// Validate runs the form checks in the order the fields are filled: the
// first broken field is reported, later ones are not inspected. The
// window inversion check compares the combined date-times, so a same-day
// window whose end time precedes its start time is rejected too.
func (f *LeaveForm) Validate(today models.CalendarDate) error {
	if f.StartDate.IsZero() {
		return exceptions.ErrClientCustomMessage(errors.New("a leave start date is required"))
	}
	if f.StartDate.Before(today) {
		return exceptions.ErrPastDateRejected(nil)
	}
	if f.EndDate.IsZero() {
		return exceptions.ErrClientCustomMessage(errors.New("a leave end date is required"))
	}

	start, err := f.StartDate.At(f.StartTime)
	if err != nil {
		return exceptions.ErrCannotParseTime(err)
	}
	end, err := f.EndDate.At(f.EndTime)
	if err != nil {
		return exceptions.ErrCannotParseTime(err)
	}
	if end.Before(start) {
		return exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientLeaveEndBeforeStart))
	}

	if f.Reason == "" {
		return exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientLeaveReasonRequired))
	}
	return nil
}
