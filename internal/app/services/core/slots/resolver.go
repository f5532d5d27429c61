package slots

import "schedboard-service/internal/app/models"

// TeacherDirectory resolves teacher identity for slot owners. Remote feed
// entries key teachers by UID; local markers may only carry an ID.
type TeacherDirectory interface {
	ByUID(uid string) (models.Teacher, bool)
	ByID(id string) (models.Teacher, bool)
}

// Resolver merges the remote feed layer with the local edit layer. A
// remote entry for a slot always wins; local counts only surface where the
// feed is silent, so a refreshed feed immediately supersedes in-process
// edits for the slots it covers.
type Resolver struct {
	store     *ScheduleStore
	directory TeacherDirectory
}

func NewResolver(store *ScheduleStore, directory TeacherDirectory) *Resolver {
	return &Resolver{store: store, directory: directory}
}

// Resolve returns the merged counts for one slot.
func (r *Resolver) Resolve(remote models.RemoteWeekSummary, date models.CalendarDate, slotTime string) SlotCounts {
	if entry, ok := remote.Lookup(date, slotTime); ok {
		counts := SlotCounts{
			Available:       entry.Availability,
			Booked:          entry.Bookings,
			OwnerTeacherUID: entry.UID,
			Source:          SourceRemote,
		}
		counts.Teacher = r.lookupTeacher(entry.UID)
		return counts
	}

	record, _ := r.store.Record(date, slotTime)
	counts := SlotCounts{
		Available: len(record.Teachers),
		Booked:    len(record.Students),
		Source:    SourceLocal,
	}
	if len(record.Teachers) > 0 {
		owner := record.Teachers[0]
		counts.OwnerTeacherUID = owner.UID
		counts.Teacher = r.lookupTeacher(owner.UID)
		if counts.Teacher == nil && owner.ID != "" {
			if teacher, ok := r.directory.ByID(owner.ID); ok {
				counts.Teacher = &teacher
			}
		}
	}
	return counts
}

// ResolveForCandidateTeacher is the teacher-scoped variant used while a
// booking draft has a candidate teacher selected. The second return is
// false when the candidate does not cover the slot at all, which the grid
// renders as neutral regardless of other teachers' availability.
func (r *Resolver) ResolveForCandidateTeacher(remote models.RemoteWeekSummary, date models.CalendarDate, slotTime, candidateUID string) (SlotCounts, bool) {
	if entry, ok := remote.Lookup(date, slotTime); ok {
		if entry.UID != candidateUID {
			return SlotCounts{}, false
		}
		counts := SlotCounts{
			Available:       entry.Availability,
			Booked:          entry.Bookings,
			OwnerTeacherUID: entry.UID,
			Source:          SourceRemote,
		}
		counts.Teacher = r.lookupTeacher(entry.UID)
		return counts, true
	}

	record, _ := r.store.Record(date, slotTime)
	for _, teacher := range record.Teachers {
		if teacher.UID == candidateUID {
			counts := SlotCounts{
				Available:       1,
				Booked:          len(record.Students),
				OwnerTeacherUID: candidateUID,
				Source:          SourceLocal,
			}
			counts.Teacher = r.lookupTeacher(candidateUID)
			return counts, true
		}
	}
	return SlotCounts{}, false
}

func (r *Resolver) lookupTeacher(uid string) *models.Teacher {
	if uid == "" {
		return nil
	}
	if teacher, ok := r.directory.ByUID(uid); ok {
		return &teacher
	}
	if teacher, ok := r.directory.ByID(uid); ok {
		return &teacher
	}
	return nil
}

// Classify maps resolved counts to the cell rendering class. The order of
// the branches is load-bearing: a slot with bookings but no availability
// is an alert even though booked >= available also holds.
func Classify(counts SlotCounts) CellClass {
	switch {
	case counts.Available == 0 && counts.Booked == 0:
		return CellNeutral
	case counts.Available == 0:
		return CellAlert
	case counts.Booked >= counts.Available:
		return CellAlert
	default:
		return CellOpen
	}
}
