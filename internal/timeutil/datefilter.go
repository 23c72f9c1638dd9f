package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, 1)).Add(-time.Nanosecond)
}

// LastDays returns the range covering n complete days ending on the day of now.
// LastDays(1, now) is today only.
func LastDays(n int, now time.Time) (start, end time.Time) {
	return StartOfDay(now.AddDate(0, 0, -(n - 1))), EndOfDay(now)
}
