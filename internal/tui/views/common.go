// Package views holds the tab models of the interactive dashboard.
package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/borchsolutions/tablero/internal/stats"
	"github.com/borchsolutions/tablero/internal/tui/ui"
)

// blankLabel stands in for an empty category value.
const blankLabel = "(vacío)"

const barWidth = 30

type bar struct {
	label string
	value float64
	text  string
}

func countBars(counts []stats.Count) []bar {
	bars := make([]bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, bar{label: labelOrBlank(c.Value), value: float64(c.Count), text: strconv.Itoa(c.Count)})
	}
	return bars
}

func groupBars(groups []stats.Group) []bar {
	bars := make([]bar, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, bar{label: labelOrBlank(g.Key), value: g.Sum, text: formatHours(g.Sum) + "h"})
	}
	return bars
}

// renderChart draws a titled horizontal bar chart, scaled to width cells.
func renderChart(styles ui.Styles, title string, bars []bar, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render(title))
	b.WriteString("\n")

	if len(bars) == 0 {
		b.WriteString("  " + styles.Muted.Render("Sin datos") + "\n")
		return b.String()
	}

	labelWidth := 0
	var maxValue float64
	for _, br := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(br.label))
		if !math.IsNaN(br.value) && !math.IsInf(br.value, 0) {
			maxValue = max(maxValue, br.value)
		}
	}
	labelWidth = min(labelWidth, 24)

	for _, br := range bars {
		n := barCells(br.value, maxValue, width)
		label := truncate(br.label, labelWidth)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		fmt.Fprintf(&b, "  %s%s  %s %s\n",
			styles.BarLabel.Render(label), pad,
			styles.Bar.Render(strings.Repeat("█", n)),
			styles.BarValue.Render(br.text))
	}
	return b.String()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

// barCells scales v into [0, width], keeping positive values visible.
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

func labelOrBlank(s string) string {
	if s == "" {
		return blankLabel
	}
	return s
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
