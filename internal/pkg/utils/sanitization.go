package utils

import (
	"regexp"
	"strings"

	"schedboard-service/internal/pkg/constvars"
)

var emailPattern = regexp.MustCompile(constvars.RegexEmail)

// SanitizeAttendeeEmails trims, lower-cases and case-insensitively
// deduplicates an attendee list, dropping entries that are not RFC-shaped
// local@domain addresses. Order of first occurrence is preserved.
func SanitizeAttendeeEmails(attendees []string) []string {
	seen := make(map[string]bool, len(attendees))
	result := make([]string, 0, len(attendees))
	for _, attendee := range attendees {
		email := strings.ToLower(strings.TrimSpace(attendee))
		if email == "" || !emailPattern.MatchString(email) {
			continue
		}
		if seen[email] {
			continue
		}
		seen[email] = true
		result = append(result, email)
	}
	return result
}

// IsValidEmail reports whether a single address is RFC-shaped.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// SanitizeReason trims free-text reasons before the non-empty check.
func SanitizeReason(reason string) string {
	return strings.TrimSpace(reason)
}
