package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterFormatter(NewYAMLFormatter())
}

// YAMLFormatter writes the whole report as a YAML document.
type YAMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*YAMLFormatter)(nil)

// NewYAMLFormatter returns a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Name returns the format name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// Format writes r to w.
func (f *YAMLFormatter) Format(r *Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.normalized()); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}
