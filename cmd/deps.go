package cmd

import (
	"io"
	"os"
	"time"

	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/osutil"
	"github.com/borchsolutions/tablero/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Exit       func(code int)
	Now        func() time.Time
	Getenv     func(key string) string
	ConfigPath func() (string, error)
	RunTUI     tui.Runner
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Exit:       os.Exit,
		Now:        time.Now,
		Getenv:     osutil.Provider.Getenv,
		ConfigPath: config.GetConfigPath,
		RunTUI:     tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
