// Package filter narrows a record table by exact-match selectors and an
// inclusive start-date range.
package filter

import (
	"slices"

	"github.com/borchsolutions/tablero/internal/record"
)

// AllLabel is the display label for "no constraint" in selector menus.
// It is never compared against data.
const AllLabel = "Todos"

// Selector is a per-field choice: either no constraint or an exact value.
type Selector struct {
	value string
	set   bool
}

// Any returns a selector that matches every value.
func Any() Selector {
	return Selector{}
}

// Equals returns a selector that matches v exactly (case-sensitive).
func Equals(v string) Selector {
	return Selector{value: v, set: true}
}

// IsAny reports whether the selector places no constraint.
func (s Selector) IsAny() bool {
	return !s.set
}

// Value returns the selected value and whether one is set.
func (s Selector) Value() (string, bool) {
	return s.value, s.set
}

// Matches reports whether v satisfies the selector.
func (s Selector) Matches(v string) bool {
	return !s.set || s.value == v
}

// String returns the value, or AllLabel for Any.
func (s Selector) String() string {
	if !s.set {
		return AllLabel
	}
	return s.value
}

// DateRange bounds the start date. Both bounds are inclusive and either may
// be left unset (Valid == false) to leave that side open.
type DateRange struct {
	From record.Date
	To   record.Date
}

// IsOpen reports whether neither bound is set.
func (r DateRange) IsOpen() bool {
	return !r.From.Valid && !r.To.Valid
}

// Contains reports whether d lies within the range.
// A missing date never satisfies a bounded range.
func (r DateRange) Contains(d record.Date) bool {
	if r.IsOpen() {
		return true
	}
	if !d.Valid {
		return false
	}
	if r.From.Valid && d.Compare(r.From) < 0 {
		return false
	}
	if r.To.Valid && d.Compare(r.To) > 0 {
		return false
	}
	return true
}

// Spec is the full set of filter criteria.
// The zero Spec matches every record.
type Spec struct {
	Company  Selector
	Status   Selector
	Assignee Selector
	Dates    DateRange
}

// IsEmpty returns true if no criterion is set (matches all records)
func (s Spec) IsEmpty() bool {
	return s.Company.IsAny() && s.Status.IsAny() && s.Assignee.IsAny() && s.Dates.IsOpen()
}

// MatchesSelectors reports whether r satisfies the company, status and
// assignee selectors, ignoring the date range.
func (s Spec) MatchesSelectors(r record.Record) bool {
	return s.Company.Matches(r.Company) &&
		s.Status.Matches(r.Status) &&
		s.Assignee.Matches(r.Assignee)
}

// Matches reports whether r satisfies every criterion.
func (s Spec) Matches(r record.Record) bool {
	return s.MatchesSelectors(r) && s.Dates.Contains(r.StartDate)
}

// Apply returns a new table containing only the records of t that match spec,
// in their original order. t is never modified.
func Apply(t record.Table, spec Spec) record.Table {
	filtered := make([]record.Record, 0, len(t.Records))
	for _, r := range t.Records {
		if spec.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return t.Derive(filtered)
}

// Undated counts the records that pass the selectors of spec but are dropped
// only because their start date is missing. It is zero when the date range
// is open.
func Undated(t record.Table, spec Spec) int {
	if spec.Dates.IsOpen() {
		return 0
	}
	n := 0
	for _, r := range t.Records {
		if !r.StartDate.Valid && spec.MatchesSelectors(r) {
			n++
		}
	}
	return n
}

// Options returns the sorted distinct non-empty values of col in t.
// Callers offer these (plus AllLabel) as selector choices; t should be the
// unfiltered base table.
func Options(t record.Table, col record.Column) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range t.Records {
		v := r.Text(col)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// StartDateBounds returns the earliest and latest valid start dates in t.
// Both bounds are unset when no record has a valid start date.
func StartDateBounds(t record.Table) DateRange {
	var r DateRange
	for _, rec := range t.Records {
		d := rec.StartDate
		if !d.Valid {
			continue
		}
		if !r.From.Valid || d.Compare(r.From) < 0 {
			r.From = d
		}
		if !r.To.Valid || d.Compare(r.To) > 0 {
			r.To = d
		}
	}
	return r
}
