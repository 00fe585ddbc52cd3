package utils

import (
	"time"
)

const (
	// timestampLayout is the day-first local layout used in generated documents.
	timestampLayout = "02/01/2006, 15:04:05"
	// fileTimestampLayout is filesystem safe: no colons, one-second resolution.
	fileTimestampLayout = "2006-01-02T15-04-05"
)

// FormatTimestamp returns the provided time formatted using the local time zone
// and a human-readable day-first layout with seconds.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(timestampLayout)
}

// FormatFileTimestamp returns the UTC time truncated to whole seconds in a form
// that is safe to embed in file names on every platform.
func FormatFileTimestamp(value time.Time) string {
	return value.UTC().Truncate(time.Second).Format(fileTimestampLayout)
}
