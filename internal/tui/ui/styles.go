package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle    lipgloss.Style
	SectionTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Metric cards
	MetricCard  lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style

	// Charts
	BarLabel lipgloss.Style
	Bar      lipgloss.Style
	BarValue lipgloss.Style

	// Task table
	TableHeader lipgloss.Style
	RowNormal   lipgloss.Style
	RowSelected lipgloss.Style
	Link        lipgloss.Style

	// Filter form
	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	FieldFocused lipgloss.Style
	Input        lipgloss.Style

	Dialog lipgloss.Style
	Muted  lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStylesFromRegistry maps the current bubbletint theme onto the dashboard.
// Purple carries titles and the active tab, cyan carries keys and bars,
// bright purple carries figures.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	warning := r.Yellow()
	errorColor := r.Red()
	link := r.Blue()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		SectionTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		MetricCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 2).
			MarginRight(1),
		MetricLabel: lipgloss.NewStyle().
			Foreground(muted),
		MetricValue: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		BarLabel: lipgloss.NewStyle().
			Foreground(fg),
		Bar: lipgloss.NewStyle().
			Foreground(secondary),
		BarValue: lipgloss.NewStyle().
			Foreground(accent),

		TableHeader: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		Link: lipgloss.NewStyle().
			Foreground(link).
			Underline(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(16),
		FieldValue: lipgloss.NewStyle().
			Foreground(fg),
		FieldFocused: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(56),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
	}
}
