// Package record defines the task/issue rows loaded from a tracker export
// and the fixed column schema they share.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ISODate is the layout used whenever a date is rendered for display or export.
const ISODate = "2006-01-02"

var (
	// ErrUnknownColumn is returned when a column name is not part of the schema.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotNumeric is returned when a numeric operation targets a text column.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Date is a calendar date that may be missing.
// A zero Date (Valid == false) represents a cell that could not be parsed.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String renders the date as YYYY-MM-DD, or "" when missing.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(ISODate)
}

// Compare returns -1, 0 or +1. Both dates must be valid.
func (d Date) Compare(o Date) int {
	return d.Time.Compare(o.Time)
}

// Record is one task/issue row.
type Record struct {
	Code        string
	Type        string
	Company     string
	TaskType    string
	Hours       float64
	Status      string
	Assignee    string
	StartDate   Date
	CreatedDate Date
	UpdatedDate Date
	Summary     string
}

// Text returns the display value of col.
// Dates render as YYYY-MM-DD (empty when missing) and hours with no trailing zeros.
func (r Record) Text(col Column) string {
	switch col {
	case ColCode:
		return r.Code
	case ColType:
		return r.Type
	case ColCompany:
		return r.Company
	case ColTaskType:
		return r.TaskType
	case ColHours:
		return strconv.FormatFloat(r.Hours, 'f', -1, 64)
	case ColStatus:
		return r.Status
	case ColAssignee:
		return r.Assignee
	case ColStartDate:
		return r.StartDate.String()
	case ColCreatedDate:
		return r.CreatedDate.String()
	case ColUpdatedDate:
		return r.UpdatedDate.String()
	case ColSummary:
		return r.Summary
	}
	return ""
}

// Number returns the numeric value of col.
func (r Record) Number(col Column) (float64, error) {
	if !col.Numeric() {
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, col)
	}
	return r.Hours, nil
}

// Table is an ordered sequence of records sharing a fixed schema.
// Tables are never modified in place; filters return new tables that may
// share the underlying records.
type Table struct {
	Columns []Column
	Records []Record
}

// NewTable returns a table over records with the full schema.
func NewTable(records []Record) Table {
	return Table{Columns: AllColumns(), Records: records}
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.Records)
}

// Derive returns a table with the same schema holding records.
func (t Table) Derive(records []Record) Table {
	return Table{Columns: t.Columns, Records: records}
}

// IssueURL returns the tracker link for an issue code.
func IssueURL(host, code string) string {
	return "https://" + host + "/browse/" + code
}
