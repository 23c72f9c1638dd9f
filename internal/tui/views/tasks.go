package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/service"
	"github.com/borchsolutions/tablero/internal/tui/ui"
)

type taskColumn struct {
	header string
	width  int
	right  bool
	value  func(r record.Record) string
}

var taskColumns = []taskColumn{
	{"Fecha Inicio", 12, false, func(r record.Record) string { return r.StartDate.String() }},
	{"Código", 10, false, func(r record.Record) string { return r.Code }},
	{"Tipo", 10, false, func(r record.Record) string { return r.Type }},
	{"Horas", 6, true, func(r record.Record) string { return formatHours(r.Hours) }},
	{"Empresa", 14, false, func(r record.Record) string { return r.Company }},
	{"Tipo Tarea", 14, false, func(r record.Record) string { return r.TaskType }},
	{"Resumen", 0, false, func(r record.Record) string { return r.Summary }},
	{"Estado", 12, false, func(r record.Record) string { return r.Status }},
	{"Asignado", 14, false, func(r record.Record) string { return r.Assignee }},
}

// minSummaryWidth keeps the flexible Resumen column readable on narrow terminals.
const minSummaryWidth = 12

// TasksModel is the scrollable detail table of the filtered tasks.
type TasksModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width     int
	height    int
	cursor    int
	offset    int
	dashboard *service.Dashboard
}

// NewTasksModel creates a new tasks view model
func NewTasksModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TasksModel {
	return TasksModel{services: services, styles: styles, keys: keys}
}

// Update implements tea.Model
func (m TasksModel) Update(msg tea.Msg) (TasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := m.rowCount()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor--
		case key.Matches(msg, m.keys.Down):
			m.cursor++
		case key.Matches(msg, m.keys.PageUp):
			m.cursor -= m.pageSize()
		case key.Matches(msg, m.keys.PageDown):
			m.cursor += m.pageSize()
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = n - 1
		}
		m.clamp()

	case ui.DashboardUpdatedMsg:
		m.dashboard = msg.Dashboard
		m.clamp()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m TasksModel) View() string {
	var b strings.Builder

	if m.dashboard == nil {
		return "Loading..."
	}
	n := m.rowCount()
	if n == 0 {
		b.WriteString(m.styles.ViewTitle.Render("Detalle de Tareas"))
		b.WriteString("\n")
		if m.dashboard.Spec.IsEmpty() {
			b.WriteString(m.styles.Muted.Render("The workbook has no tasks"))
		} else {
			b.WriteString(m.styles.Muted.Render("No tasks match the current filters"))
		}
		return b.String()
	}

	widths := m.columnWidths()
	headers := make([]string, len(taskColumns))
	for i, c := range taskColumns {
		headers[i] = padRight(c.header, widths[i])
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(headers, " ")))
	b.WriteString("\n")

	end := min(m.offset+m.pageSize(), n)
	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.dashboard.View.Records[i], widths)
		if i == m.cursor {
			b.WriteString(m.styles.RowSelected.Render(line))
		} else {
			b.WriteString(m.styles.RowNormal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s",
		m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.cursor+1, n)),
		m.styles.Link.Render(m.SelectedURL()))
	return b.String()
}

// SetSize sets the view dimensions
func (m *TasksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// Selected returns the task under the cursor.
func (m TasksModel) Selected() (record.Record, bool) {
	if m.rowCount() == 0 {
		return record.Record{}, false
	}
	return m.dashboard.View.Records[m.cursor], true
}

// SelectedURL returns the tracker link of the task under the cursor, or "".
func (m TasksModel) SelectedURL() string {
	r, ok := m.Selected()
	if !ok {
		return ""
	}
	return m.services.Dashboard.IssueURL(r.Code)
}

func (m TasksModel) rowCount() int {
	if m.dashboard == nil {
		return 0
	}
	return m.dashboard.View.Len()
}

// pageSize is the number of rows that fit between the header and the footer.
func (m TasksModel) pageSize() int {
	if m.height <= 0 {
		return 20
	}
	return max(m.height-3, 1)
}

func (m *TasksModel) clamp() {
	n := m.rowCount()
	m.cursor = max(min(m.cursor, n-1), 0)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if page := m.pageSize(); m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(min(m.offset, n-1), 0)
}

func (m TasksModel) columnWidths() []int {
	widths := make([]int, len(taskColumns))
	fixed := 0
	flex := -1
	for i, c := range taskColumns {
		if c.width == 0 {
			flex = i
			continue
		}
		widths[i] = c.width
		fixed += c.width + 1
	}
	if flex >= 0 {
		avail := 40
		if m.width > 0 {
			avail = m.width - fixed
		}
		widths[flex] = max(avail, minSummaryWidth)
	}
	return widths
}

func (m TasksModel) renderRow(r record.Record, widths []int) string {
	cells := make([]string, len(taskColumns))
	for i, c := range taskColumns {
		v := truncate(c.value(r), widths[i])
		if c.right {
			cells[i] = strings.Repeat(" ", max(widths[i]-len([]rune(v)), 0)) + v
		} else {
			cells[i] = padRight(v, widths[i])
		}
	}
	return strings.Join(cells, " ")
}
