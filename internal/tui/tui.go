// Package tui provides the interactive terminal dashboard.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/borchsolutions/tablero/internal/app"
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/service"
	"github.com/borchsolutions/tablero/internal/tui/ui"
	"github.com/borchsolutions/tablero/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabOverview Tab = iota
	TabTasks
	TabFilters
)

var tabNames = []string{"Resumen", "Tareas", "Filtros"}

// Runner starts an interactive dashboard over a loaded session.
type Runner func(services *service.Services, sess *service.Session, spec filter.Spec) error

// Model is the root TUI model
type Model struct {
	services  *service.Services
	session   *service.Session
	dashboard *service.Dashboard

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	overviewView views.OverviewModel
	tasksView    views.TasksModel
	filtersView  views.FiltersModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates the dashboard for sess with spec as the initial filters.
func New(services *service.Services, sess *service.Session, spec filter.Spec) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	m := Model{
		services:      services,
		session:       sess,
		activeTab:     TabOverview,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		overviewView:  views.NewOverviewModel(styles, keys),
		tasksView:     views.NewTasksModel(services, styles, keys),
		filtersView:   views.NewFiltersModel(services.Dashboard.Options(sess), spec, styles, keys),
	}
	m.recompute(spec)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("%s - %s", app.Name, filepath.Base(m.session.Path)))
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While a date is typed every key belongs to the input.
		if m.isInputMode() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			cmd = m.nextTheme()
			return m, cmd

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabOverview
			return m, nil

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabTasks
			return m, nil

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabFilters
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Tabs, status lines and padding
		contentHeight := max(m.height-9, 1)
		m.overviewView.SetSize(m.width-4, contentHeight)
		m.tasksView.SetSize(m.width-4, contentHeight)
		m.filtersView.SetSize(m.width-4, contentHeight)
		return m, nil

	case ui.FiltersChangedMsg:
		m.recompute(msg.Spec)
		return m, nil
	}

	switch m.activeTab {
	case TabOverview:
		m.overviewView, cmd = m.overviewView.Update(msg)
	case TabTasks:
		m.tasksView, cmd = m.tasksView.Update(msg)
	case TabFilters:
		m.filtersView, cmd = m.filtersView.Update(msg)
	}

	return m, cmd
}

// recompute runs the filter and aggregate pass over the base table and
// hands the result to every view.
func (m *Model) recompute(spec filter.Spec) {
	m.dashboard = m.services.Dashboard.Compute(m.session, spec)
	msg := ui.DashboardUpdatedMsg{Dashboard: m.dashboard}
	m.overviewView, _ = m.overviewView.Update(msg)
	m.tasksView, _ = m.tasksView.Update(msg)
}

func (m *Model) nextTheme() tea.Cmd {
	name := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()

	msg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
	m.overviewView, _ = m.overviewView.Update(msg)
	m.tasksView, _ = m.tasksView.Update(msg)
	m.filtersView, _ = m.filtersView.Update(msg)

	return m.saveThemeConfig(name)
}

// saveThemeConfig records the theme in the config file when one exists.
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		if !m.services.Config.Exists() {
			return nil
		}
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

func (m Model) isInputMode() bool {
	return m.activeTab == TabFilters && m.filtersView.IsInputMode()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabOverview:
		b.WriteString(m.overviewView.View())
	case TabTasks:
		b.WriteString(m.tasksView.View())
	case TabFilters:
		b.WriteString(m.filtersView.View())
	}

	b.WriteString("\n")
	if w := m.warningLine(); w != "" {
		b.WriteString(m.styles.Warning.Render(w))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// Dashboard returns the current filter and aggregate result.
func (m Model) Dashboard() *service.Dashboard {
	return m.dashboard
}

// ActiveTab returns the tab on screen.
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderHeader names the workbook and summarizes the active filters.
func (m Model) renderHeader() string {
	spec := m.dashboard.Spec
	parts := []string{
		fmt.Sprintf("%s [%s]", filepath.Base(m.session.Path), m.session.Sheet),
		"Empresa=" + spec.Company.String(),
		"Estado=" + spec.Status.String(),
		"Asignado=" + spec.Assignee.String(),
	}
	if !spec.Dates.IsOpen() {
		from, to := spec.Dates.From.String(), spec.Dates.To.String()
		if from == "" {
			from = "…"
		}
		if to == "" {
			to = "…"
		}
		parts = append(parts, fmt.Sprintf("Fecha Inicio=%s..%s", from, to))
	}
	return m.styles.Muted.Render(strings.Join(parts, "  "))
}

// warningLine reports records the date range dropped for lacking a start
// date and cells that failed to parse at load time.
func (m Model) warningLine() string {
	var parts []string
	if n := m.dashboard.Undated; n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s without a valid Fecha Inicio excluded by the date filter", n, pluralize("task", n)))
	}
	if n := m.session.InvalidDates(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unparseable %s treated as missing", n, pluralize("date", n)))
	}
	return strings.Join(parts, "; ")
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("enter", "apply"))
		parts = append(parts, m.renderKeyHelp("esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabOverview:
			parts = append(parts, m.renderKeyHelp("j/k", "scroll"))
		case TabTasks:
			parts = append(parts, m.renderKeyHelp("j/k", "move"))
			parts = append(parts, m.renderKeyHelp("pgup/pgdn", "page"))
		case TabFilters:
			parts = append(parts, m.renderKeyHelp("←/→", "change"))
			parts = append(parts, m.renderKeyHelp("enter", "edit date"))
			parts = append(parts, m.renderKeyHelp("x", "clear"))
			parts = append(parts, m.renderKeyHelp("R", "reset"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("T", "theme"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - 4 - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.SectionTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.Muted.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  T          Next theme (" + m.themeProvider.CurrentDisplayName() + ")\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabOverview:
		help.WriteString(m.styles.Muted.Render("Resumen:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Scroll charts\n")
	case TabTasks:
		help.WriteString(m.styles.Muted.Render("Tareas:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Move selection\n")
		help.WriteString("  PgUp/PgDn  Page\n")
		help.WriteString("  g/G        First/last task\n")
	case TabFilters:
		help.WriteString(m.styles.Muted.Render("Filtros:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Choose field\n")
		help.WriteString("  h/l        Previous/next value\n")
		help.WriteString("  Enter      Type a date or 'last N days'\n")
		help.WriteString("  x          Clear field\n")
		help.WriteString("  R          Reset all filters\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// Run starts the dashboard on the alternate screen and blocks until it quits.
func Run(services *service.Services, sess *service.Session, spec filter.Spec) error {
	p := tea.NewProgram(New(services, sess, spec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
