package cmd

import (
	"github.com/spf13/cobra"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/cli/handlers"
)

// newRequest builds the CLI deps and the filtered request for a data command.
func newRequest(cmd *cobra.Command, args []string) (*cli.Deps, handlers.Request, bool) {
	d, ok := newCLIDeps(cmd, deps.Stderr)
	if !ok {
		return nil, handlers.Request{}, false
	}

	spec, err := filterSpec(cmd, d.Now())
	if err != nil {
		d.Fail("Invalid date filter", err, "Use --from/--to with YYYY-MM-DD or DD/MM/YYYY, or --last N on its own")
		return nil, handlers.Request{}, false
	}
	return d, handlers.Request{Path: args[0], Spec: spec}, true
}

var summaryCmd = &cobra.Command{
	Use:   "summary <file.xlsx>",
	Short: "Show metrics and breakdown charts",
	Long: `Show the dashboard metrics (Total Tareas, Total Horas, Tareas en Proceso,
Personal Activo) and text charts of tasks per company, tasks per task type,
hours per assignee and tasks per status.

Examples:
  tablero summary export.xlsx
  tablero summary export.xlsx --company Acme --last 30
  tablero summary export.xlsx --status "En proceso" --from 2024-01-01`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, req, ok := newRequest(cmd, args)
		if !ok {
			return
		}
		handlers.ShowSummary(d, req)
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks <file.xlsx>",
	Short: "List the filtered tasks",
	Long: `List the filtered tasks with start date, code, type, hours, company,
task type, summary, status and assignee, followed by each issue link.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, req, ok := newRequest(cmd, args)
		if !ok {
			return
		}
		noLinks, _ := cmd.Flags().GetBool("no-links")
		handlers.ListTasks(d, req, !noLinks)
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options <file.xlsx>",
	Short: "Show the values available to each filter",
	Long: `Show the distinct companies, statuses and assignees of the workbook, each
list headed by "Todos", and the range of valid start dates.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := newCLIDeps(cmd, deps.Stderr)
		if !ok {
			return
		}
		handlers.ShowOptions(d, args[0])
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export the filtered report",
	Long: `Export the filtered dashboard as json, yaml, csv or html.

json and yaml hold the metrics, breakdowns and tasks; csv holds the task
rows; html is a self-contained page whose issue codes link to the tracker.

Examples:
  tablero export export.xlsx --format html -o report.html
  tablero export export.xlsx --format csv --assignee Bob > bob.csv`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, req, ok := newRequest(cmd, args)
		if !ok {
			return
		}
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")
		handlers.Export(d, req, format, outPath)
	},
}

func init() {
	for _, c := range []*cobra.Command{summaryCmd, tasksCmd, exportCmd} {
		addFilterFlags(c)
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(optionsCmd)

	tasksCmd.Flags().Bool("no-links", false, "Do not list issue links")
	exportCmd.Flags().StringP("format", "f", "json", "Output format: csv, html, json, yaml")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
