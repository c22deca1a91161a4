package utils

import (
	"time"
)

// DateLayoutISO is the YYYY-MM-DD layout used by REST query strings.
const DateLayoutISO = "2006-01-02"

// DateLayoutDE matches the de-DE short date format (e.g. "7.3.2026").
const DateLayoutDE = "2.1.2006"

// DateRange returns the [from, to] ISO dates covering the last days
// ending at now, in UTC.
func DateRange(now time.Time, days int) (from, to string) {
	if days <= 0 {
		days = 7
	}
	now = now.UTC()
	return now.AddDate(0, 0, -days).Format(DateLayoutISO), now.Format(DateLayoutISO)
}

// FromUnix converts UNIX seconds to a UTC time. Non-positive values give the zero time.
func FromUnix(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// FormatDisplayDate formats t with layout, or returns "" for the zero time.
func FormatDisplayDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DateLayoutDE
	}
	return t.Format(layout)
}
