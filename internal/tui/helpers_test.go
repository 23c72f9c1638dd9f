package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/loader"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/service"
)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	return service.NewServices(configPath, config.DefaultConfig(), nil)
}

// testSession holds two dated Bob tasks for company A and one undated Amy
// task for company B.
func testSession() *service.Session {
	return &service.Session{
		ID:    uuid.New(),
		Path:  "/tmp/export.xlsx",
		Sheet: "Sheet1",
		Table: record.NewTable([]record.Record{
			{Code: "SD-1", Company: "A", Status: "En proceso", Assignee: "Bob", Hours: 5, StartDate: record.NewDate(2024, time.January, 10)},
			{Code: "SD-2", Company: "A", Status: "Done", Assignee: "Bob", Hours: 3, StartDate: record.NewDate(2024, time.February, 1)},
			{Code: "SD-3", Company: "B", Status: "En proceso", Assignee: "Amy", Hours: 2},
		}),
		Warnings: []loader.CellWarning{{Row: 4, Column: record.ColStartDate, Value: "bad-date"}},
	}
}
