package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/borchsolutions/tablero/internal/app"
	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/log"
	"github.com/borchsolutions/tablero/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Dashboard for task tracker spreadsheet exports",
	Long: `tablero summarizes a task tracker export (.xlsx) by company, status,
assignee and start date.

Usage:
  tablero summary <file.xlsx>                 Metrics and breakdown charts
  tablero tasks <file.xlsx>                   Detail table with issue links
  tablero options <file.xlsx>                 Values available to each filter
  tablero export <file.xlsx> --format html    Export the filtered report
  tablero tui <file.xlsx>                     Interactive dashboard
  tablero config                              Show or create the config file

Filters (summary, tasks, export, tui):
  --company, --status, --assignee             Exact value; omitted means all
  --from, --to                                Start date range, inclusive
  --last N                                    Start date within the last N days

The workbook must have a header row with the columns Código, Tipo, Empresa,
Tipo Tarea, Horas Utilizadas, Estado, Asignado, Fecha Inicio, Fecha Creación,
Fecha Actualización and Resumen.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default is <user config dir>/tablero/config.toml)")
	pf.String("sheet", "", "Workbook sheet to read (default is the first sheet)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.BoolP("quiet", "q", false, "Only log warnings and errors")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	app.Version, app.Commit, app.Date = version, commit, date
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		app.Name + " version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// newCLIDeps resolves the configuration, sets up logging to logOut and
// builds the services for a command. On failure it reports the error and
// returns false.
func newCLIDeps(cmd *cobra.Command, logOut io.Writer) (*cli.Deps, bool) {
	fail := func(msg string, err error, hint string) (*cli.Deps, bool) {
		cli.PrintError(deps.Stderr, msg, err, hint)
		deps.Exit(1)
		return nil, false
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = deps.ConfigPath()
		if err != nil {
			return fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		}
	}

	cfg, err := config.Resolve(configPath, deps.Getenv)
	if err != nil {
		return fail("Failed to load configuration", err,
			"Check that your config file is valid TOML format: "+configPath)
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet, _ = cmd.Flags().GetString("sheet")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	logger := log.Setup(logOut, verbose, quiet, cfg.LogLevel)

	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Exit:     deps.Exit,
		Now:      deps.Now,
		Services: service.NewServices(configPath, cfg, logger),
	}, true
}
