package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	// MaxWidth truncates longer cells with an ellipsis; zero means unlimited.
	MaxWidth int
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are ignored; missing values are empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = truncate(values[i], t.columns[i].MaxWidth)
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = lipgloss.Width(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = colorBold.Sprint(pad(col.Header, widths[i], col.Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], t.columns[i].Align)
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, cells []string) error {
	line := strings.TrimRight("  "+strings.Join(cells, "  "), " ")
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	if maxWidth <= 1 || len(r) < maxWidth {
		return string(r[:min(len(r), maxWidth)])
	}
	return string(r[:maxWidth-1]) + "…"
}
