package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/borchsolutions/tablero/internal/service"
	"github.com/borchsolutions/tablero/internal/tui/ui"
)

// OverviewModel shows the metric cards and the four breakdown charts.
type OverviewModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width     int
	height    int
	offset    int
	dashboard *service.Dashboard
}

// NewOverviewModel creates a new overview view model
func NewOverviewModel(styles ui.Styles, keys ui.KeyMap) OverviewModel {
	return OverviewModel{styles: styles, keys: keys}
}

// Update implements tea.Model
func (m OverviewModel) Update(msg tea.Msg) (OverviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.offset = max(m.offset-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.offset = min(m.offset+1, m.maxOffset())
		case key.Matches(msg, m.keys.Home):
			m.offset = 0
		}

	case ui.DashboardUpdatedMsg:
		m.dashboard = msg.Dashboard
		m.offset = min(m.offset, m.maxOffset())

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m OverviewModel) View() string {
	lines := strings.Split(strings.TrimRight(m.content(), "\n"), "\n")
	if m.height > 0 && len(lines) > m.height {
		end := min(m.offset+m.height, len(lines))
		lines = lines[m.offset:end]
	}
	return strings.Join(lines, "\n")
}

// SetSize sets the view dimensions
func (m *OverviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.offset = min(m.offset, m.maxOffset())
}

func (m OverviewModel) maxOffset() int {
	if m.height <= 0 {
		return 0
	}
	n := strings.Count(strings.TrimRight(m.content(), "\n"), "\n") + 1
	return max(n-m.height, 0)
}

func (m OverviewModel) content() string {
	if m.dashboard == nil {
		return "Loading..."
	}
	d := m.dashboard

	var b strings.Builder
	b.WriteString(m.renderMetrics())
	b.WriteString("\n\n")

	width := barWidth
	if m.width > 0 {
		width = max(min(barWidth, m.width-40), 5)
	}

	b.WriteString(renderChart(m.styles, "Distribución de Tareas por Empresa", countBars(d.Companies), width))
	b.WriteString("\n")
	b.WriteString(renderChart(m.styles, "Distribución de Tipos de Tareas", countBars(d.TaskTypes), width))
	b.WriteString("\n")
	b.WriteString(renderChart(m.styles, "Carga de Trabajo por Persona (Horas)", groupBars(d.Workload), width))
	b.WriteString("\n")
	b.WriteString(renderChart(m.styles, "Estado de las Tareas", countBars(d.Statuses), width))
	return b.String()
}

func (m OverviewModel) renderMetrics() string {
	mt := m.dashboard.Metrics
	cards := []struct{ label, value string }{
		{"Total Tareas", strconv.Itoa(mt.TotalCount)},
		{"Total Horas", formatHours(mt.TotalHours)},
		{"Tareas en Proceso", strconv.Itoa(mt.InProgressCount)},
		{"Personal Activo", strconv.Itoa(mt.DistinctAssignees)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := m.styles.MetricLabel.Render(c.label) + "\n" + m.styles.MetricValue.Render(c.value)
		rendered = append(rendered, m.styles.MetricCard.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
