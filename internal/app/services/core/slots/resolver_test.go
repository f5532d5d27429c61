package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/teachers"
)

func newResolver(t *testing.T) (*Resolver, *ScheduleStore, *teachers.Directory) {
	t.Helper()
	store := NewScheduleStore(grid.GranularityHourly)
	directory := teachers.NewDirectory()
	return NewResolver(store, directory), store, directory
}

func TestResolve(t *testing.T) {
	date, err := models.ParseCalendarDate("2026-04-10")
	assert.NoError(t, err)

	t.Run("remote entry wins over local edits", func(t *testing.T) {
		resolver, store, _ := newResolver(t)
		store.AddTeacher(date, "09:00", TeacherRef{ID: "T-1", UID: "TJL1"})
		store.AddTeacher(date, "09:00", TeacherRef{ID: "T-2", UID: "TJL2"})

		remote := models.RemoteWeekSummary{
			date.String(): {"09:00": {Availability: 3, Bookings: 1, UID: "TJL9"}},
		}

		counts := resolver.Resolve(remote, date, "09:00")
		assert.Equal(t, 3, counts.Available)
		assert.Equal(t, 1, counts.Booked)
		assert.Equal(t, "TJL9", counts.OwnerTeacherUID)
		assert.Equal(t, SourceRemote, counts.Source)
	})

	t.Run("local layer surfaces where the feed is silent", func(t *testing.T) {
		resolver, store, directory := newResolver(t)
		directory.Put(models.Teacher{ID: "T-1", UID: "TJL1", FullName: "Ada Veen"})
		store.AddTeacher(date, "10:00", TeacherRef{ID: "T-1", UID: "TJL1"})
		store.AddStudent(date, "10:00", StudentBookingRef{JetLearnerID: "JL55"})

		counts := resolver.Resolve(models.RemoteWeekSummary{}, date, "10:00")
		assert.Equal(t, 1, counts.Available)
		assert.Equal(t, 1, counts.Booked)
		assert.Equal(t, SourceLocal, counts.Source)
		if assert.NotNil(t, counts.Teacher) {
			assert.Equal(t, "Ada Veen", counts.Teacher.FullName)
		}
	})

	t.Run("empty slot resolves to zero counts", func(t *testing.T) {
		resolver, _, _ := newResolver(t)
		counts := resolver.Resolve(models.RemoteWeekSummary{}, date, "11:00")
		assert.Equal(t, SlotCounts{Source: SourceLocal}, counts)
	})
}

func TestResolveForCandidateTeacher(t *testing.T) {
	date, err := models.ParseCalendarDate("2026-04-10")
	assert.NoError(t, err)

	t.Run("slot owned by another teacher is not covered", func(t *testing.T) {
		resolver, _, _ := newResolver(t)
		remote := models.RemoteWeekSummary{
			date.String(): {"09:00": {Availability: 2, Bookings: 0, UID: "TJL9"}},
		}

		_, covered := resolver.ResolveForCandidateTeacher(remote, date, "09:00", "TJL1")
		assert.False(t, covered)
	})

	t.Run("candidate's own remote slot is covered", func(t *testing.T) {
		resolver, _, _ := newResolver(t)
		remote := models.RemoteWeekSummary{
			date.String(): {"09:00": {Availability: 2, Bookings: 1, UID: "TJL1"}},
		}

		counts, covered := resolver.ResolveForCandidateTeacher(remote, date, "09:00", "TJL1")
		assert.True(t, covered)
		assert.Equal(t, 2, counts.Available)
		assert.Equal(t, 1, counts.Booked)
	})

	t.Run("local availability of the candidate counts as one", func(t *testing.T) {
		resolver, store, _ := newResolver(t)
		store.AddTeacher(date, "10:00", TeacherRef{UID: "TJL1"})
		store.AddTeacher(date, "10:00", TeacherRef{UID: "TJL2"})

		counts, covered := resolver.ResolveForCandidateTeacher(models.RemoteWeekSummary{}, date, "10:00", "TJL1")
		assert.True(t, covered)
		assert.Equal(t, 1, counts.Available)
		assert.Equal(t, SourceLocal, counts.Source)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		available int
		booked    int
		want      CellClass
	}{
		{"no activity at all", 0, 0, CellNeutral},
		{"bookings without availability", 0, 2, CellAlert},
		{"fully booked", 5, 5, CellAlert},
		{"overbooked", 3, 5, CellAlert},
		{"open capacity", 5, 2, CellOpen},
		{"open with no bookings", 1, 0, CellOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(SlotCounts{Available: tt.available, Booked: tt.booked}))
		})
	}
}
