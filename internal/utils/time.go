package utils

import (
	"fmt"
	"time"

	"habitflow/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ValidDate checks if the string matches the standard date format.
func ValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ResolveDate returns the given date if non-empty (validating it), otherwise
// today. Commands accept an optional --date flag and share this fallback.
func ResolveDate(dateStr string) (string, error) {
	if dateStr == "" {
		return Today(), nil
	}
	if !ValidDate(dateStr) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return dateStr, nil
}
