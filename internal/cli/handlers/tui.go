package handlers

import (
	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/tui"
)

// OpenDashboard loads the workbook and hands it to the interactive dashboard.
func OpenDashboard(deps *cli.Deps, req Request, run tui.Runner) {
	sess, ok := loadSession(deps, req.Path)
	if !ok {
		return
	}

	if err := run(deps.Services, sess, req.Spec); err != nil {
		deps.Fail("Failed to run the interactive dashboard", err, "")
	}
}
