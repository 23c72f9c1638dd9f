package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/xuri/excelize/v2"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var header = []interface{}{
	"Código", "Tipo", "Empresa", "Tipo Tarea", "Horas Utilizadas", "Estado",
	"Asignado", "Fecha Inicio", "Fecha Creación", "Fecha Actualización", "Resumen",
}

// setupTestDeps returns deps backed by a temp config path plus the captured
// stdout, stderr and exit code.
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	services := service.NewServices(filepath.Join(t.TempDir(), "config.toml"), cfg, nil)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Exit:     func(code int) { exitCode = code },
		Now:      func() time.Time { return time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC) },
		Services: services,
	}

	return deps, stdout, stderr, &exitCode
}

// writeWorkbook saves rows (header excluded) under the standard header.
func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	all := append([][]interface{}{header}, rows...)
	for i, row := range all {
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

func scenarioWorkbook(t *testing.T) string {
	return writeWorkbook(t,
		[]interface{}{"SD-1", "Historia", "A", "Desarrollo", 5, "En proceso", "Bob", "10/01/2024", "", "", "First"},
		[]interface{}{"SD-2", "Bug", "A", "Soporte", 3, "Done", "Bob", "01/02/2024", "", "", "Second"},
		[]interface{}{"SD-3", "Bug", "B", "Soporte", 2, "En proceso", "Amy", "bad-date", "", "", "Third"},
	)
}

// writeBadHeader saves a workbook whose header has only two known columns.
func writeBadHeader(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	row := []interface{}{"Código", "Estado", "Notas"}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}
