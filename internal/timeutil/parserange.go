package timeutil

import (
	"fmt"
	"time"
)

// ParseDateRangeFlags parses the --from/--to/--last flags.
// A zero start or end means that side of the range is open; with no flags
// both are zero and no date constraint applies.
// Returns an error if both lastDays and from/to are specified.
func ParseDateRangeFlags(fromStr, toStr string, lastDays int, now time.Time) (start, end time.Time, err error) {
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("--last must be positive, got %d", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	if lastDays > 0 {
		start, end = LastDays(lastDays, now)
		return start, end, nil
	}

	if fromStr != "" {
		start, err = ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return start, end, nil
}
