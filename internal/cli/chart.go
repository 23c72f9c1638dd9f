package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/borchsolutions/tablero/internal/stats"
)

// DefaultBarWidth is the length of the longest bar in a chart.
const DefaultBarWidth = 30

// Bar is one labelled value of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string // rendered value; defaults to the number
}

// CountBars converts distinct-value counts into bars.
func CountBars(counts []stats.Count) []Bar {
	bars := make([]Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, Bar{Label: LabelOrBlank(c.Value), Value: float64(c.Count), Text: strconv.Itoa(c.Count)})
	}
	return bars
}

// GroupBars converts grouped sums into bars, with values shown as hours.
func GroupBars(groups []stats.Group) []Bar {
	bars := make([]Bar, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, Bar{Label: LabelOrBlank(g.Key), Value: g.Sum, Text: FormatHours(g.Sum) + "h"})
	}
	return bars
}

// RenderBars writes a titled horizontal bar chart to w. Bars are scaled so
// the largest value spans width cells. An empty chart prints "Sin datos".
func RenderBars(w io.Writer, title string, bars []Bar, width int) error {
	if _, err := fmt.Fprintln(w, SectionTitle(title)); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if len(bars) == 0 {
		_, err := fmt.Fprintf(w, "  %s\n", colorDim.Sprint("Sin datos"))
		return err
	}

	labelWidth := 0
	var maxValue float64
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		if !math.IsNaN(b.Value) && !math.IsInf(b.Value, 0) {
			maxValue = max(maxValue, b.Value)
		}
	}

	for _, b := range bars {
		n := barCells(b.Value, maxValue, width)
		text := b.Text
		if text == "" {
			text = FormatHours(b.Value)
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		if _, err := fmt.Fprintf(w, "  %s%s  %s %s\n", b.Label, pad, colorCyan.Sprint(strings.Repeat("█", n)), text); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
	}
	return nil
}

// barCells scales v against maxValue into [0, width]. Positive values get at
// least one cell; non-finite values are clamped.
func barCells(v, maxValue float64, width int) int {
	switch {
	case math.IsNaN(v) || v <= 0 || width <= 0:
		return 0
	case math.IsInf(v, 1) || maxValue <= 0:
		return width
	}
	n := int(v / maxValue * float64(width))
	return min(max(n, 1), width)
}
