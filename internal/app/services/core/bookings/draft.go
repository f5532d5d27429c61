package bookings

import (
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

type DraftState string

const (
	DraftStateEditing    DraftState = "editing"
	DraftStateSubmitting DraftState = "submitting"
	DraftStateFailed     DraftState = "failed"
	DraftStateCompleted  DraftState = "completed"
)

// ScheduleEntry is one (date, time) selection of a draft, held in the
// wall-clock values the user picked. Submission converts them to UTC
// through the chosen timezone.
type ScheduleEntry struct {
	Date models.CalendarDate
	Time string
}

// BookingDraft accumulates a booking across the multi-step selection flow.
// Validation that can only fail at entry time (past dates, entry caps)
// runs at mutation; validation that depends on the whole draft (class-type
// capacity, paid-only fields) runs again at submit.
type BookingDraft struct {
	DraftID     string
	State       DraftState
	BookingType string
	TeacherUID  string
	Entries     []ScheduleEntry
	Students    []models.Student
	Attendees   []string
	Subject     string
	ClassType   string
	ClassCount  int
	BatchName   string
	Course      string
	Recording   bool
	Tags        []string
	LastError   string
}

func NewBookingDraft(bookingType, teacherUID string) *BookingDraft {
	draft := &BookingDraft{
		DraftID:     utils.GenerateDraftID(),
		State:       DraftStateEditing,
		BookingType: bookingType,
		TeacherUID:  teacherUID,
	}
	if bookingType == constvars.BookingTypeTrial {
		draft.ClassType = constvars.ClassTypeOneToOne
		draft.ClassCount = constvars.TrialClassCount
	}
	return draft
}

// AddEntry appends a schedule entry. Past dates are rejected here, at the
// moment of selection, never deferred to submit.
func (d *BookingDraft) AddEntry(entry ScheduleEntry, today models.CalendarDate) error {
	if len(d.Entries) >= constvars.MaxScheduleEntriesPerBooking {
		return exceptions.ErrMaxScheduleEntries()
	}
	if entry.Date.Before(today) {
		return exceptions.ErrPastDateRejected(nil)
	}
	for _, existing := range d.Entries {
		if existing == entry {
			return nil
		}
	}
	d.Entries = append(d.Entries, entry)
	return nil
}

func (d *BookingDraft) RemoveEntry(entry ScheduleEntry) {
	for i, existing := range d.Entries {
		if existing == entry {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			return
		}
	}
}

// AddStudent appends a student selection, enforcing the class-type
// capacity at selection time so the fourth step cannot overfill a 1:2.
func (d *BookingDraft) AddStudent(student models.Student) error {
	for _, existing := range d.Students {
		if existing.JetLearnerID == student.JetLearnerID {
			return nil
		}
	}
	if capacity := d.studentCapacity(); len(d.Students) >= capacity {
		return exceptions.ErrClassTypeCapacityExceeded()
	}
	d.Students = append(d.Students, student)
	return nil
}

func (d *BookingDraft) RemoveStudent(jetLearnerID string) {
	for i, existing := range d.Students {
		if existing.JetLearnerID == jetLearnerID {
			d.Students = append(d.Students[:i], d.Students[i+1:]...)
			return
		}
	}
}

// SetAttendees sanitizes and stores the attendee email list: trimmed,
// lowercased, deduplicated, malformed entries dropped.
func (d *BookingDraft) SetAttendees(attendees []string) {
	d.Attendees = utils.SanitizeAttendeeEmails(attendees)
}

// SetPaidOptions records the paid-only fields. Trial drafts keep their
// fixed 1:1 single-class shape and reject the call.
func (d *BookingDraft) SetPaidOptions(subject, classType string, classCount int, batchName, course string, recording bool, tags []string) error {
	if d.BookingType != constvars.BookingTypePaid {
		return exceptions.ErrMissingPaidFields()
	}
	if classType == constvars.ClassTypeBatch && batchName == "" {
		return exceptions.ErrMissingBatchName()
	}
	d.Subject = subject
	d.ClassType = classType
	d.ClassCount = classCount
	d.BatchName = batchName
	d.Course = course
	d.Recording = recording
	d.Tags = tags

	// Shrinking the class type below the current selection is caught here,
	// not at submit.
	if capacity := d.studentCapacity(); len(d.Students) > capacity {
		return exceptions.ErrClassTypeCapacityExceeded()
	}
	return nil
}

// Validate runs the whole-draft checks in submission order.
func (d *BookingDraft) Validate() error {
	if len(d.Students) == 0 {
		return exceptions.ErrNoStudentSelected()
	}
	if len(d.Entries) == 0 {
		return exceptions.ErrNoScheduleEntry()
	}
	if len(d.Students) > d.studentCapacity() {
		return exceptions.ErrClassTypeCapacityExceeded()
	}
	if d.BookingType == constvars.BookingTypePaid {
		if d.Subject == "" || d.ClassType == "" || d.ClassCount < 1 {
			return exceptions.ErrMissingPaidFields()
		}
		if d.ClassType == constvars.ClassTypeBatch && d.BatchName == "" {
			return exceptions.ErrMissingBatchName()
		}
	}
	return nil
}

// studentCapacity maps the class type to its student cap: one for 1:1,
// two for 1:2, the global bound for batch.
func (d *BookingDraft) studentCapacity() int {
	switch d.ClassType {
	case constvars.ClassTypeOneToOne:
		return 1
	case constvars.ClassTypeOneToTwo:
		return 2
	case constvars.ClassTypeBatch:
		return constvars.MaxStudentsPerBooking
	default:
		// Class type not chosen yet; hold the line at the 1:1 floor so a
		// later SetPaidOptions can only widen, never strand selections.
		return 1
	}
}
