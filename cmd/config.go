package cmd

import (
	"github.com/spf13/cobra"

	"github.com/borchsolutions/tablero/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration: the file location, whether it
exists, and every setting after environment overrides.

tablero works without a configuration file. Defaults:
  tracker_host = "summitdev.atlassian.net"
  in_progress_status = "En proceso"
  sheet = ""            (first sheet)
  theme = "dracula"
  log_level = "warn"

Environment overrides: TABLERO_TRACKER_HOST, TABLERO_SHEET, TABLERO_LOG_LEVEL.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := newCLIDeps(cmd, deps.Stderr)
		if !ok {
			return
		}
		handlers.ShowConfig(d)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := newCLIDeps(cmd, deps.Stderr)
		if !ok {
			return
		}
		handlers.InitConfig(d)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := newCLIDeps(cmd, deps.Stderr)
		if !ok {
			return
		}
		handlers.ShowConfigPath(d)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
