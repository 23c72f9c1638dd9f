package service

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/borchsolutions/tablero/internal/config"
)

var header = []interface{}{
	"Código", "Tipo", "Empresa", "Tipo Tarea", "Horas Utilizadas", "Estado",
	"Asignado", "Fecha Inicio", "Fecha Creación", "Fecha Actualización", "Resumen",
}

// writeWorkbook saves the three-task fixture to a temp file and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	rows := [][]interface{}{
		header,
		{"SD-1", "Historia", "A", "Desarrollo", 5, "En proceso", "Bob", "10/01/2024", "", "", "First"},
		{"SD-2", "Bug", "A", "Soporte", 3, "Done", "Bob", "01/02/2024", "", "", "Second"},
		{"SD-3", "Bug", "B", "Soporte", 2, "En proceso", "Amy", "bad-date", "", "", "Third"},
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return NewServices(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig(), nil)
}
