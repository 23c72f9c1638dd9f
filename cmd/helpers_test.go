package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"

	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type testEnv struct {
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	exitCode   int
	configPath string
	env        map[string]string

	tuiCalled bool
	tuiSpec   filter.Spec
	tuiSess   *service.Session
}

// setupTestEnv installs test deps with a temp config path and a fixed clock.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
		configPath: filepath.Join(t.TempDir(), "config.toml"),
		env:        map[string]string{},
	}

	SetDeps(&Deps{
		Stdout:     te.stdout,
		Stderr:     te.stderr,
		Exit:       func(code int) { te.exitCode = code },
		Now:        func() time.Time { return time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC) },
		Getenv:     func(key string) string { return te.env[key] },
		ConfigPath: func() (string, error) { return te.configPath, nil },
		RunTUI: func(_ *service.Services, sess *service.Session, spec filter.Spec) error {
			te.tuiCalled = true
			te.tuiSess = sess
			te.tuiSpec = spec
			return nil
		},
	})
	t.Cleanup(ResetDeps)
	return te
}

// execute runs the root command with args after clearing flag state left by
// earlier runs.
func execute(t *testing.T, te *testEnv, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetOut(te.stdout)
	rootCmd.SetErr(te.stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	return rootCmd.Execute()
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

var header = []interface{}{
	"Código", "Tipo", "Empresa", "Tipo Tarea", "Horas Utilizadas", "Estado",
	"Asignado", "Fecha Inicio", "Fecha Creación", "Fecha Actualización", "Resumen",
}

// scenarioWorkbook writes two dated Bob tasks for company A and an Amy task
// for company B with an unparseable start date.
func scenarioWorkbook(t *testing.T) string {
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
