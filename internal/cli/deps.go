package cli

import (
	"io"
	"os"
	"time"

	"github.com/borchsolutions/tablero/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
	Now    func() time.Time

	Services *service.Services
}

// NewDeps creates a new Deps with the given services writing to the
// process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Exit:     os.Exit,
		Now:      time.Now,
		Services: services,
	}
}

// Fail prints an Error/Details/Hint block to stderr and exits with status 1.
// Empty details or hint lines are omitted.
func (d *Deps) Fail(msg string, details error, hint string) {
	PrintError(d.Stderr, msg, details, hint)
	d.Exit(1)
}
