package events

import (
	"regexp"
	"strings"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/constvars"
)

var namedIDPattern = regexp.MustCompile(`^(.*)\((.+)\)$`)

// ParseBookingSummary splits a booking event summary of the form
// "<kind> : <learner>(<jlid>) : <teacher>(<tuid>)" into its fields. Any
// segment that does not follow the convention degrades that field to
// "N/A"; the parser never fails outright, because remote summaries are
// free text and display must stay best-effort.
func ParseBookingSummary(summary string) models.BookingEventDetails {
	details := models.BookingEventDetails{
		Kind:        constvars.SummaryFieldNA,
		LearnerName: constvars.SummaryFieldNA,
		LearnerID:   constvars.SummaryFieldNA,
		TeacherName: constvars.SummaryFieldNA,
		TeacherUID:  constvars.SummaryFieldNA,
	}

	segments := strings.Split(summary, constvars.SummarySegmentMark)
	if kind := strings.TrimSpace(segments[0]); kind != "" {
		details.Kind = kind
	}
	if len(segments) > 1 {
		details.LearnerName, details.LearnerID = splitNamedID(segments[1])
	}
	if len(segments) > 2 {
		details.TeacherName, details.TeacherUID = splitNamedID(segments[2])
	}
	return details
}

func splitNamedID(segment string) (name, id string) {
	name, id = constvars.SummaryFieldNA, constvars.SummaryFieldNA

	match := namedIDPattern.FindStringSubmatch(strings.TrimSpace(segment))
	if match == nil {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			name = trimmed
		}
		return name, id
	}
	if trimmed := strings.TrimSpace(match[1]); trimmed != "" {
		name = trimmed
	}
	return name, strings.TrimSpace(match[2])
}

// ParseAvailability carries an availability event through unchanged; the
// summary of an availability record holds no identifiers to extract.
func ParseAvailability(event models.CalendarEvent) models.AvailabilityEventDetails {
	return models.AvailabilityEventDetails{
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Creator:   event.Creator,
		Summary:   event.Summary,
	}
}

// ScanIdentifiers token-scans free text for learner and teacher
// identifiers. Teacher UIDs are matched first: the teacher prefix contains
// the learner prefix, so the reverse order would misfile every teacher
// token as a learner.
func ScanIdentifiers(text string) (learnerID, teacherUID string) {
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '(' || r == ')' || r == ':' || r == ','
	}) {
		switch {
		case strings.HasPrefix(token, constvars.TeacherUIDPrefix):
			if teacherUID == "" {
				teacherUID = token
			}
		case strings.HasPrefix(token, constvars.LearnerIDPrefix):
			if learnerID == "" {
				learnerID = token
			}
		}
	}
	return learnerID, teacherUID
}
