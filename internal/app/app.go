// Package app holds process-wide identity shared by the CLI and TUI.
package app

// Name is the application name used for the binary and the config directory.
const Name = "tablero"

// Build information, set from main via SetVersionInfo.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
