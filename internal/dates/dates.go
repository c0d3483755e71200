package dates

import (
	"fmt"
	"time"
)

// A date key is a calendar day in "YYYY-MM-DD" form, taken from local
// calendar components. All "same day" logic in the app compares date keys,
// never elapsed durations, so behavior is stable across DST transitions.

// FormatKey renders the calendar day of t as a date key.
func FormatKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TodayKey returns the date key for now.
func TodayKey(now time.Time) string {
	return FormatKey(now)
}

// YesterdayKey returns the date key for the calendar day before now.
func YesterdayKey(now time.Time) string {
	return FormatKey(now.AddDate(0, 0, -1))
}

// MsUntilTomorrow returns the milliseconds remaining until the next local
// midnight. Never negative.
func MsUntilTomorrow(now time.Time) int64 {
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	ms := tomorrow.Sub(now).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// IsSameKey reports whether t falls on the calendar day named by key.
func IsSameKey(t time.Time, key string) bool {
	return FormatKey(t) == key
}

// ToTime parses a stored completion timestamp. Returns ok=false for empty
// or unparseable values; callers drop such records rather than failing.
func ToTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDurationShort renders a millisecond duration as hours and minutes,
// e.g. "5h 03m" or "5г 03хв" for Ukrainian.
func FormatDurationShort(ms int64, lang string) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	if lang == "ua" {
		return fmt.Sprintf("%dг %02dхв", hours, minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
