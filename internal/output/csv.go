package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/borchsolutions/tablero/internal/record"
)

func init() {
	RegisterFormatter(NewCSVFormatter())
}

// csvHeader follows the spreadsheet column names, with the issue link last.
var csvHeader = []string{
	record.ColStartDate.String(),
	record.ColCode.String(),
	record.ColType.String(),
	record.ColHours.String(),
	record.ColCompany.String(),
	record.ColTaskType.String(),
	record.ColSummary.String(),
	record.ColStatus.String(),
	record.ColAssignee.String(),
	"URL",
}

// CSVFormatter writes the detail table, one task per row.
type CSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*CSVFormatter)(nil)

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format writes the tasks of r to w with a header row.
func (f *CSVFormatter) Format(r *Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range r.Tasks {
		row := []string{
			t.StartDate,
			t.Code,
			t.Type,
			strconv.FormatFloat(t.Hours, 'f', -1, 64),
			t.Company,
			t.TaskType,
			t.Summary,
			t.Status,
			t.Assignee,
			t.URL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", t.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
