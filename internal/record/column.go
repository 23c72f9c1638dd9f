package record

import (
	"fmt"
	"strings"
)

// Column identifies one column of the export schema.
type Column int

const (
	ColCode Column = iota
	ColType
	ColCompany
	ColTaskType
	ColHours
	ColStatus
	ColAssignee
	ColStartDate
	ColCreatedDate
	ColUpdatedDate
	ColSummary
)

// Header names as they appear in the spreadsheet's first row.
var columnNames = []string{
	"Código",
	"Tipo",
	"Empresa",
	"Tipo Tarea",
	"Horas Utilizadas",
	"Estado",
	"Asignado",
	"Fecha Inicio",
	"Fecha Creación",
	"Fecha Actualización",
	"Resumen",
}

// AllColumns returns every column in schema order.
func AllColumns() []Column {
	cols := make([]Column, len(columnNames))
	for i := range columnNames {
		cols[i] = Column(i)
	}
	return cols
}

// String returns the header name.
func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// Numeric reports whether the column holds numbers.
func (c Column) Numeric() bool {
	return c == ColHours
}

// IsDate reports whether the column holds day/month/year dates.
func (c Column) IsDate() bool {
	return c == ColStartDate || c == ColCreatedDate || c == ColUpdatedDate
}

// ColumnByName resolves a header name. Surrounding whitespace is ignored,
// matching is otherwise exact.
func ColumnByName(name string) (Column, error) {
	name = strings.TrimSpace(name)
	for i, n := range columnNames {
		if n == name {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
