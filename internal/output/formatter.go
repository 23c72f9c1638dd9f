// Package output defines the Formatter interface for writing dashboard
// reports in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Formatter writes a report to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "csv", "html").
	Name() string

	// Format writes the report to w.
	Format(r *Report, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

// FormatNames returns the sorted names of all registered formats.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return formatNames()
}

func formatNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
