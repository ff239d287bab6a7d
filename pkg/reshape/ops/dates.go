package ops

import (
	"strconv"
	"time"
)

// This file is the date engine shared by current_timestamp, format_date,
// parse_date, date_add, and date_diff, per spec.md §4.2's "Dates" section:
// a fixed auto-detecting parser, a fixed set of output formats, and a
// fixed unit vocabulary for arithmetic and diffing.

// parseAnyDate tries, in order: ISO-8601 with an offset (including "Z"),
// ISO-8601 naive (no offset, treated as UTC), ISO-8601 date-only (midnight
// UTC), 10-digit unix seconds, and 13-digit unix milliseconds.
func parseAnyDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	if len(s) == 10 && allDigits(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(n, 0).UTC(), true
		}
	}
	if len(s) == 13 && allDigits(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(n).UTC(), true
		}
	}
	return time.Time{}, false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// formatTime renders t (already located in the desired zone) using one of
// the seven fixed output formats.
func formatTime(t time.Time, format string) (string, bool) {
	switch format {
	case "iso8601":
		return t.Format("2006-01-02T15:04:05Z07:00"), true
	case "iso8601_basic":
		return t.Format("20060102T150405Z0700"), true
	case "unix":
		return strconv.FormatInt(t.Unix(), 10), true
	case "unix_ms":
		return strconv.FormatInt(t.UnixMilli(), 10), true
	case "human":
		return t.Format("2006-01-02 15:04:05 MST"), true
	case "date_only":
		return t.Format("2006-01-02"), true
	case "time_only":
		return t.Format("15:04:05"), true
	default:
		return "", false
	}
}

// locate resolves tz (falling back to UTC on an unknown zone) and returns t
// represented in that location.
func locate(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// unitSeconds maps a diff/arithmetic unit name to its length in seconds.
// months/years are only valid when longUnits is true (date_add only), per
// spec.md §4.2.
func unitSeconds(unit string, longUnits bool) (float64, bool) {
	switch unit {
	case "seconds":
		return 1, true
	case "minutes":
		return 60, true
	case "hours":
		return 3600, true
	case "days":
		return 86400, true
	case "weeks":
		return 604800, true
	case "months":
		return 30 * 86400, longUnits
	case "years":
		return 365 * 86400, longUnits
	default:
		return 0, false
	}
}
