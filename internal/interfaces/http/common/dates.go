package common

import (
	"strings"
	"time"
)

// ParseDateTime parses ISO-8601 timestamps, falling back to a bare date.
// A bare date resolves to midnight in the given location.
func ParseDateTime(value string, location *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if location == nil {
		location = time.UTC
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"} {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return parsed, true
		}
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, location); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// EndOfDay pushes a date-only bound to the last instant of that day so
// range filters include the whole day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
