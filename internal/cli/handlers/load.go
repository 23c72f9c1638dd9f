// Package handlers implements the CLI commands on top of the service layer.
// Every handler reports failures through cli.Deps.Fail and renders no
// partial output on error.
package handlers

import (
	"errors"
	"os"
	"strings"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/loader"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/service"
)

// Request is the workbook and filter a data command runs against.
type Request struct {
	Path string
	Spec filter.Spec
}

// loadSession loads path, printing an error with a hint on failure.
func loadSession(deps *cli.Deps, path string) (*service.Session, bool) {
	sess, err := deps.Services.Dashboard.Load(path)
	if err != nil {
		deps.Fail("Failed to load workbook "+path, err, loadHint(err))
		return nil, false
	}

	if n := len(sess.Warnings); n > 0 {
		cli.PrintWarning(deps.Stderr, "%d unparseable %s treated as missing (use --verbose to list them)",
			n, cli.Pluralize("cell", n))
	}
	return sess, true
}

// compute runs one dashboard pass, warning about undated records the date
// range dropped.
func compute(deps *cli.Deps, sess *service.Session, spec filter.Spec) *service.Dashboard {
	d := deps.Services.Dashboard.Compute(sess, spec)
	if d.Undated > 0 {
		cli.PrintWarning(deps.Stderr, "%d %s without a valid %s excluded by the date filter",
			d.Undated, cli.Pluralize("task", d.Undated), record.ColStartDate)
	}
	return d
}

func loadHint(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "Check that the file exists and the path is correct"
	case errors.Is(err, os.ErrPermission):
		return "Check that the file is readable"
	case errors.Is(err, loader.ErrNotSpreadsheet):
		return "Export the tracker view as an Excel workbook (.xlsx)"
	case errors.Is(err, loader.ErrSheetNotFound):
		return "Pass --sheet <name> or set sheet in the config file"
	case errors.Is(err, loader.ErrEmptySheet):
		return "The first row of the sheet must be the header row"
	case errors.Is(err, loader.ErrMissingColumn):
		return "The header row must contain: " + strings.Join(columnNames(), ", ")
	}
	return ""
}

func columnNames() []string {
	cols := record.AllColumns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.String()
	}
	return names
}
