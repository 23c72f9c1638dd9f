package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/borchsolutions/tablero/internal/cli/handlers"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui <file.xlsx>",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard for a workbook.

Views available:
  - Overview: metrics and breakdown charts
  - Tasks: scrollable task table with the selected issue link
  - Filters: company, status, assignee and start date range

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - T: Next colour theme
  - ?: Show help
  - q: Quit

Filter flags set the initial filters.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Log lines would corrupt the full-screen view.
		logOut := io.Discard
		d, ok := newCLIDeps(cmd, logOut)
		if !ok {
			return
		}
		spec, err := filterSpec(cmd, d.Now())
		if err != nil {
			d.Fail("Invalid date filter", err, "Use --from/--to with YYYY-MM-DD or DD/MM/YYYY, or --last N on its own")
			return
		}
		handlers.OpenDashboard(d, handlers.Request{Path: args[0], Spec: spec}, deps.RunTUI)
	},
}

func init() {
	addFilterFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}
