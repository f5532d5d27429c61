package slots

import (
	"sync"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/grid"
)

// ScheduleStore keeps the local layer of slot state: in-process edits made
// through the drafting surfaces before they are pushed upstream. The first
// touch of a date materializes the full time catalog for that day, so a
// lookup never distinguishes "day unknown" from "slot empty".
type ScheduleStore struct {
	mu          sync.RWMutex
	granularity grid.Granularity
	days        map[models.CalendarDate]map[string]*SlotRecord
}

func NewScheduleStore(granularity grid.Granularity) *ScheduleStore {
	return &ScheduleStore{
		granularity: granularity,
		days:        make(map[models.CalendarDate]map[string]*SlotRecord),
	}
}

// day materializes the catalog for a date on first touch. Callers hold mu.
func (s *ScheduleStore) day(date models.CalendarDate) map[string]*SlotRecord {
	if slots, ok := s.days[date]; ok {
		return slots
	}
	slots := make(map[string]*SlotRecord)
	for _, slotTime := range grid.CatalogTimes(s.granularity) {
		slots[slotTime] = &SlotRecord{}
	}
	s.days[date] = slots
	return slots
}

// Record returns a copy of the local record for a slot. Unknown times for
// a materialized day return false; unmaterialized days materialize first.
func (s *ScheduleStore) Record(date models.CalendarDate, slotTime string) (SlotRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.day(date)[slotTime]
	if !ok {
		return SlotRecord{}, false
	}
	return copyRecord(record), true
}

// AddTeacher marks a teacher available in a slot. Adding the same UID
// twice is a no-op.
func (s *ScheduleStore) AddTeacher(date models.CalendarDate, slotTime string, teacher TeacherRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.day(date)[slotTime]
	if !ok {
		return false
	}
	for _, existing := range record.Teachers {
		if existing.UID == teacher.UID {
			return true
		}
	}
	record.Teachers = append(record.Teachers, teacher)
	return true
}

// RemoveTeacher clears a teacher's availability marker from a slot.
func (s *ScheduleStore) RemoveTeacher(date models.CalendarDate, slotTime, teacherUID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.day(date)[slotTime]
	if !ok {
		return false
	}
	for i, existing := range record.Teachers {
		if existing.UID == teacherUID {
			record.Teachers = append(record.Teachers[:i], record.Teachers[i+1:]...)
			return true
		}
	}
	return false
}

// AddStudent marks a student booked in a slot. Duplicate learner IDs are
// collapsed.
func (s *ScheduleStore) AddStudent(date models.CalendarDate, slotTime string, student StudentBookingRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.day(date)[slotTime]
	if !ok {
		return false
	}
	for _, existing := range record.Students {
		if existing.JetLearnerID == student.JetLearnerID {
			return true
		}
	}
	record.Students = append(record.Students, student)
	return true
}

// RemoveStudent clears a student's booking marker from a slot.
func (s *ScheduleStore) RemoveStudent(date models.CalendarDate, slotTime, jetLearnerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.day(date)[slotTime]
	if !ok {
		return false
	}
	for i, existing := range record.Students {
		if existing.JetLearnerID == jetLearnerID {
			record.Students = append(record.Students[:i], record.Students[i+1:]...)
			return true
		}
	}
	return false
}

func copyRecord(record *SlotRecord) SlotRecord {
	out := SlotRecord{
		Teachers: make([]TeacherRef, len(record.Teachers)),
		Students: make([]StudentBookingRef, len(record.Students)),
	}
	copy(out.Teachers, record.Teachers)
	copy(out.Students, record.Students)
	return out
}
