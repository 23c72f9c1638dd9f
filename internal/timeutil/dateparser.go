// Package timeutil parses the date formats accepted on the command line and
// in spreadsheet cells, and provides small calendar helpers.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayMonthYear is the layout of date cells in tracker exports.
// Day and month may have one or two digits.
const DayMonthYear = "2/1/2006"

// ParseDayMonthYear parses a spreadsheet date cell (e.g. "10/01/2024").
// The result is midnight UTC. Surrounding whitespace is ignored; anything
// else that does not match the layout exactly is an error.
func ParseDayMonthYear(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(DayMonthYear, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day/month/year date %q", input)
	}
	return t, nil
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight (start of day) in local timezone.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
//
// Valid inputs:
//   - "2024-01-15" (ISO format)
//   - "15/01/2024" (European format)
//
// Invalid inputs return an error with suggested formats.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	t, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	t, err = time.ParseInLocation("02/01/2006", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, buildDateParseError(input)
}

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`)
	relativeDaysRe  = regexp.MustCompile(`^last\s(\d+)\sdays?$`)
)

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}

// ParseRelativeDays parses "last N days" / "last N day" and returns the N-day
// range ending on the day of now.
func ParseRelativeDays(input string, now time.Time) (start, end time.Time, err error) {
	if input == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("relative date cannot be empty (use format 'last N days', e.g., 'last 7 days')")
	}

	matches := relativeDaysRe.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid format '%s' (use 'last N days' or 'last N day', e.g., 'last 7 days', 'last 30 days', 'last 1 day')", input)
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid number in relative date: %s", matches[1])
	}
	if n <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid number of days: must be positive, got %d", n)
	}

	start, end = LastDays(n, now)
	return start, end, nil
}
