// Package itinerary keeps the trip window, the country visits and the
// generated daily plans consistent with each other.
//
// Everything here is a pure function of its inputs: no I/O, no clock, no
// shared state. Invalid dates never produce errors; they are skipped when
// computing bounds and abort synchronization as a whole.
package itinerary

import (
	"time"
)

// DateLayout is the calendar-date format used throughout the trip data.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. Besides "2006-01-02" it accepts full
// RFC 3339 timestamps, whose time of day is dropped. The result is midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return StartOfDay(t), true
}

// FormatDate renders t as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns the calendar day of t, in t's own location, as midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseWindow parses both bounds of w. It fails when either bound is missing
// or malformed, or when arrival is after departure.
func ParseWindow(arrival, departure string) (start, end time.Time, ok bool) {
	start, ok = ParseDate(arrival)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = ParseDate(departure)
	if !ok || start.After(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// WindowDays returns how many calendar days arrival..departure spans,
// both ends included. ok is false when ParseWindow fails.
func WindowDays(arrival, departure string) (n int, ok bool) {
	start, end, ok := ParseWindow(arrival, departure)
	if !ok {
		return 0, false
	}
	return daysBetween(start, end) + 1, true
}

// daysBetween returns the number of whole days from start to end.
// Both must be midnight UTC.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
