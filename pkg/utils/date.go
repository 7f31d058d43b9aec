package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD query parameter.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	return time.Parse(time.DateOnly, dateStr)
}

// FormatDate renders a date the way it crosses the API boundary.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
