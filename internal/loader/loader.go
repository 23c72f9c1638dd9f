// Package loader reads a tracker spreadsheet export into a record.Table.
package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/timeutil"
)

var (
	// ErrNotSpreadsheet indicates the input is not a readable xlsx workbook.
	ErrNotSpreadsheet = errors.New("not a spreadsheet workbook")
	// ErrSheetNotFound indicates the requested sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrEmptySheet indicates the sheet has no header row.
	ErrEmptySheet = errors.New("sheet has no header row")
	// ErrMissingColumn indicates a required column is absent from the header row.
	ErrMissingColumn = errors.New("missing required column")
)

// LoadError is returned for any failure that prevents a table from being built.
type LoadError struct {
	Path    string   // file path, empty when loading from a reader
	Sheet   string   // sheet being read, if known
	Missing []string // absent column names, for ErrMissingColumn
	Err     error
}

func (e *LoadError) Error() string {
	src := "workbook"
	if e.Path != "" {
		src = e.Path
	}
	if e.Sheet != "" {
		src += " [" + e.Sheet + "]"
	}
	if len(e.Missing) > 0 {
		return fmt.Sprintf("load %s: %v: %s", src, e.Err, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("load %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options controls how a workbook is read.
type Options struct {
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
}

// CellWarning describes a cell that could not be parsed and was treated as
// missing. The row is kept.
type CellWarning struct {
	Row    int // 1-based spreadsheet row number
	Column record.Column
	Value  string
}

func (w CellWarning) String() string {
	return fmt.Sprintf("row %d, %s: unparseable value %q", w.Row, w.Column, w.Value)
}

// Result is a loaded table plus the non-fatal problems met while reading it.
type Result struct {
	Table    record.Table
	Sheet    string
	Warnings []CellWarning
}

// LoadFile opens path and loads it.
func LoadFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	res, err := Load(f, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return res, nil
}

// Load parses a workbook from r. The first row of the sheet is the header;
// every column of the schema must be present in it.
func Load(r io.Reader, opts Options) (*Result, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("%w: %v", ErrNotSpreadsheet, err)}
	}
	defer func() { _ = wb.Close() }()

	sheet, err := pickSheet(wb, opts.Sheet)
	if err != nil {
		return nil, &LoadError{Sheet: opts.Sheet, Err: err}
	}

	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Sheet: sheet, Err: fmt.Errorf("%w: %v", ErrNotSpreadsheet, err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Sheet: sheet, Err: ErrEmptySheet}
	}

	index, missing := mapHeader(rows[0])
	if len(missing) > 0 {
		return nil, &LoadError{Sheet: sheet, Missing: missing, Err: ErrMissingColumn}
	}

	p := rowParser{index: index, date1904: uses1904(wb)}
	records := make([]record.Record, 0, len(rows)-1)
	var warnings []CellWarning

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec, ws := p.parse(row, i+2)
		records = append(records, rec)
		warnings = append(warnings, ws...)
	}

	return &Result{
		Table:    record.NewTable(records),
		Sheet:    sheet,
		Warnings: warnings,
	}, nil
}

func pickSheet(wb *excelize.File, want string) (string, error) {
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrEmptySheet
	}
	if want == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, want, strings.Join(sheets, ", "))
}

func uses1904(wb *excelize.File) bool {
	props, err := wb.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

// mapHeader returns the cell index of every schema column and the names of
// columns that are absent. The first occurrence of a duplicated header wins.
func mapHeader(header []string) (map[record.Column]int, []string) {
	index := make(map[record.Column]int)
	for i, name := range header {
		col, err := record.ColumnByName(name)
		if err != nil {
			continue
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}

	var missing []string
	for _, col := range record.AllColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col.String())
		}
	}
	return index, missing
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

type rowParser struct {
	index    map[record.Column]int
	date1904 bool
}

func (p rowParser) cell(row []string, col record.Column) string {
	i := p.index[col]
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func (p rowParser) parse(row []string, rowNum int) (record.Record, []CellWarning) {
	var warnings []CellWarning
	text := func(col record.Column) string {
		return p.cell(row, col)
	}
	date := func(col record.Column) record.Date {
		raw := p.cell(row, col)
		d, ok := p.parseDate(raw)
		if !ok && strings.TrimSpace(raw) != "" {
			warnings = append(warnings, CellWarning{Row: rowNum, Column: col, Value: raw})
		}
		return d
	}

	rec := record.Record{
		Code:        text(record.ColCode),
		Type:        text(record.ColType),
		Company:     text(record.ColCompany),
		TaskType:    text(record.ColTaskType),
		Status:      text(record.ColStatus),
		Assignee:    text(record.ColAssignee),
		StartDate:   date(record.ColStartDate),
		CreatedDate: date(record.ColCreatedDate),
		UpdatedDate: date(record.ColUpdatedDate),
		Summary:     text(record.ColSummary),
	}

	if raw := strings.TrimSpace(text(record.ColHours)); raw != "" {
		h, err := strconv.ParseFloat(raw, 64)
		// Hours are a finite non-negative quantity; anything else counts as 0.
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			warnings = append(warnings, CellWarning{Row: rowNum, Column: record.ColHours, Value: raw})
		} else {
			rec.Hours = h
		}
	}

	return rec, warnings
}

// parseDate accepts day/month/year text or a native Excel date serial.
// Anything else is a missing date.
func (p rowParser) parseDate(raw string) (record.Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return record.Date{}, false
	}
	if t, err := timeutil.ParseDayMonthYear(s); err == nil {
		return record.DateOf(t), true
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, p.date1904)
		if err == nil {
			return record.DateOf(t), true
		}
	}
	return record.Date{}, false
}
