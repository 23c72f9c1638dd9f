package output

import (
	"encoding/json"
	"fmt"
	"io"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONFormatter writes the whole report as a JSON document.
type JSONFormatter struct {
	// Compact disables two-space indentation.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes r to w.
func (f *JSONFormatter) Format(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r.normalized()); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
