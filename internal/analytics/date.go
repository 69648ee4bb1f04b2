// Package analytics implements the pure call-record aggregation pipeline:
// date/duration normalization, period resolution, record filtering,
// company-wide and per-operator aggregation, leaderboard ranking and
// period-over-period comparison. Every function is a pure computation over
// its inputs; malformed data degrades to zeroed output, never to an error.
package analytics

import (
	"strings"
	"time"
)

// NormalizeDate turns one of the accepted date shapes (DD/MM/YYYY text,
// ISO-ish text containing '-', or a native time.Time) into the calendar day
// at local midnight. The day/month/year read from the input are preserved
// verbatim; no timezone shifting beyond zeroing the clock. Returns false for
// empty or unparsable input so callers can skip the record.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return DayStart(d), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return DayStart(*d), true
	case string:
		return parseDateText(d)
	}
	return time.Time{}, false
}

func parseDateText(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		// layout "2/1/2006" also accepts zero-padded day and month
		t, err := time.ParseInLocation("2/1/2006", s, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if strings.Contains(s, "-") {
		// ISO-ish text: only the calendar-day prefix matters. Parsing the
		// full timestamp would pull in its offset and could move the day.
		if len(s) < 10 {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	return time.Time{}, false
}

// DayStart returns t pinned to 00:00:00.000 local time
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DayEnd returns t pinned to 23:59:59.999 local time
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, time.Local)
}
