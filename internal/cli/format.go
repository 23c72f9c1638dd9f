// Package cli provides the CLI presentation layer for the tablero application.
// It handles command-line output formatting: metrics, text bar charts and
// aligned tables.
package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
)

// Shared color printers.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
	colorDim    = color.New(color.Faint)
)

// BlankLabel stands in for an empty grouping value.
const BlankLabel = "(vacío)"

// FormatHours formats hours with at most two decimals and no trailing zeros.
// Examples: "8", "2.5", "1.33"
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// LabelOrBlank returns s, or BlankLabel when s is empty.
func LabelOrBlank(s string) string {
	if s == "" {
		return BlankLabel
	}
	return s
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// PrintError writes the Error/Details/Hint block used by every command.
func PrintError(w io.Writer, msg string, details error, hint string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", colorRed.Sprint("Error:"), msg)
	if details != nil {
		_, _ = fmt.Fprintf(w, "Details: %v\n", details)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// PrintWarning writes a single warning line.
func PrintWarning(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", colorYellow.Sprint("Warning:"), fmt.Sprintf(format, args...))
}
