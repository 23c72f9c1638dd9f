// Package service provides the business logic layer for the tablero
// application. It runs the load, filter and aggregate pipeline and builds
// reports, providing one API for both CLI and TUI frontends.
package service

import (
	"github.com/google/uuid"

	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/loader"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/stats"
)

// Session is one loaded workbook. Its Table is the immutable base every
// dashboard pass filters from.
type Session struct {
	ID       uuid.UUID
	Path     string
	Sheet    string
	Table    record.Table
	Warnings []loader.CellWarning
}

// InvalidDates counts cells on date columns that could not be parsed.
func (s *Session) InvalidDates() int {
	n := 0
	for _, w := range s.Warnings {
		if w.Column.IsDate() {
			n++
		}
	}
	return n
}

// Dashboard is the result of one filter and aggregate pass.
type Dashboard struct {
	Spec      filter.Spec
	View      record.Table
	Metrics   stats.Metrics
	Companies []stats.Count // tasks per company
	TaskTypes []stats.Count // tasks per task type
	Workload  []stats.Group // hours per assignee, ascending
	Statuses  []stats.Count // tasks per status
	Undated   int           // records dropped only for a missing start date
}

// FilterOptions are the selector candidates offered for a session.
// Each list excludes filter.AllLabel, which callers prepend.
type FilterOptions struct {
	Companies []string
	Statuses  []string
	Assignees []string
	// Dates spans the earliest and latest valid start dates.
	Dates filter.DateRange
}
