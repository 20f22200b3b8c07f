package utils

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD), also accepting a
// full RFC3339 timestamp and truncating it to the date.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders a timestamp as RFC3339.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
