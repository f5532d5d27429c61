package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schedboard-service/internal/app/models"
)

func TestParseBookingSummary(t *testing.T) {
	t.Run("well-formed summary", func(t *testing.T) {
		details := ParseBookingSummary("Paid Class : Mira Oduya(JL4821) : Ada Veen(TJL900)")
		assert.Equal(t, models.BookingEventDetails{
			Kind:        "Paid Class",
			LearnerName: "Mira Oduya",
			LearnerID:   "JL4821",
			TeacherName: "Ada Veen",
			TeacherUID:  "TJL900",
		}, details)
	})

	t.Run("missing teacher segment degrades teacher fields", func(t *testing.T) {
		details := ParseBookingSummary("Trial Class : Mira Oduya(JL4821)")
		assert.Equal(t, "Trial Class", details.Kind)
		assert.Equal(t, "JL4821", details.LearnerID)
		assert.Equal(t, "N/A", details.TeacherName)
		assert.Equal(t, "N/A", details.TeacherUID)
	})

	t.Run("segment without parentheses keeps name only", func(t *testing.T) {
		details := ParseBookingSummary("Paid Class : Mira Oduya : Ada Veen(TJL900)")
		assert.Equal(t, "Mira Oduya", details.LearnerName)
		assert.Equal(t, "N/A", details.LearnerID)
		assert.Equal(t, "TJL900", details.TeacherUID)
	})

	t.Run("free text degrades everything but kind", func(t *testing.T) {
		details := ParseBookingSummary("weekly sync")
		assert.Equal(t, "weekly sync", details.Kind)
		assert.Equal(t, "N/A", details.LearnerID)
		assert.Equal(t, "N/A", details.TeacherUID)
	})

	t.Run("empty summary degrades every field", func(t *testing.T) {
		details := ParseBookingSummary("")
		assert.Equal(t, "N/A", details.Kind)
		assert.Equal(t, "N/A", details.LearnerName)
	})
}

func TestScanIdentifiers(t *testing.T) {
	t.Run("finds both identifiers", func(t *testing.T) {
		learnerID, teacherUID := ScanIdentifiers("Paid Class : Mira Oduya(JL4821) : Ada Veen(TJL900)")
		assert.Equal(t, "JL4821", learnerID)
		assert.Equal(t, "TJL900", teacherUID)
	})

	t.Run("teacher token is never misread as a learner", func(t *testing.T) {
		learnerID, teacherUID := ScanIdentifiers("availability TJL900 only")
		assert.Empty(t, learnerID)
		assert.Equal(t, "TJL900", teacherUID)
	})

	t.Run("first occurrence of each wins", func(t *testing.T) {
		learnerID, teacherUID := ScanIdentifiers("JL1 JL2 TJL1 TJL2")
		assert.Equal(t, "JL1", learnerID)
		assert.Equal(t, "TJL1", teacherUID)
	})

	t.Run("no identifiers yields empty results", func(t *testing.T) {
		learnerID, teacherUID := ScanIdentifiers("no identifiers here")
		assert.Empty(t, learnerID)
		assert.Empty(t, teacherUID)
	})
}
