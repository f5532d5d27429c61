package slots

import "schedboard-service/internal/app/models"

// Source marks which layer produced a slot's counts. Remote counts come
// from the upstream weekly feed; local counts are in-process edits that
// have not reached upstream yet.
type Source string

const (
	SourceRemote Source = "REMOTE"
	SourceLocal  Source = "LOCAL"
)

// CellClass is the rendering class of one grid cell.
type CellClass string

const (
	CellNeutral CellClass = "neutral"
	CellAlert   CellClass = "alert"
	CellOpen    CellClass = "open"
)

// TeacherRef is a local availability marker for one teacher in one slot.
type TeacherRef struct {
	ID  string
	UID string
}

// StudentBookingRef is a local booking marker for one student in one slot.
type StudentBookingRef struct {
	JetLearnerID string
}

// SlotRecord is the locally tracked state of one (date, time) slot.
type SlotRecord struct {
	Teachers []TeacherRef
	Students []StudentBookingRef
}

// SlotCounts is the resolved view of one cell after remote and local
// layers are merged.
type SlotCounts struct {
	Available       int
	Booked          int
	OwnerTeacherUID string
	Teacher         *models.Teacher
	Source          Source
}
