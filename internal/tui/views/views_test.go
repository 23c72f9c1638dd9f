package views

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/service"
	"github.com/borchsolutions/tablero/internal/stats"
	"github.com/borchsolutions/tablero/internal/tui/ui"
)

func testStyles() ui.Styles {
	return ui.NewThemeProvider("dracula").Styles()
}

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	return service.NewServices(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig(), nil)
}

func testSession() *service.Session {
	return &service.Session{
		Path:  "export.xlsx",
		Sheet: "Sheet1",
		Table: record.NewTable([]record.Record{
			{Code: "SD-1", Company: "A", Status: "En proceso", Assignee: "Bob", Hours: 5, StartDate: record.NewDate(2024, time.January, 10), Summary: "First"},
			{Code: "SD-2", Company: "A", Status: "Done", Assignee: "Bob", Hours: 3, StartDate: record.NewDate(2024, time.February, 1), Summary: "Second"},
			{Code: "SD-3", Company: "B", Status: "En proceso", Assignee: "Amy", Hours: 2, Summary: "Third"},
		}),
	}
}

func dashboardMsg(t *testing.T, services *service.Services, spec filter.Spec) ui.DashboardUpdatedMsg {
	t.Helper()
	return ui.DashboardUpdatedMsg{Dashboard: services.Dashboard.Compute(testSession(), spec)}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// specOf runs cmd and returns the spec of the resulting FiltersChangedMsg.
func specOf(t *testing.T, cmd tea.Cmd) filter.Spec {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ui.FiltersChangedMsg)
	if !ok {
		t.Fatalf("expected FiltersChangedMsg, got %T", msg)
	}
	return msg.Spec
}

// Overview

func TestOverview_LoadingUntilDashboard(t *testing.T) {
	m := NewOverviewModel(testStyles(), ui.DefaultKeyMap())
	if got := m.View(); got != "Loading..." {
		t.Errorf("expected Loading..., got %q", got)
	}
}

func TestOverview_View(t *testing.T) {
	services := setupTestServices(t)
	m := NewOverviewModel(testStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{Company: filter.Equals("A")}))

	view := m.View()
	for _, want := range []string{
		"Total Tareas", "Total Horas", "Tareas en Proceso", "Personal Activo",
		"Distribución de Tareas por Empresa", "Distribución de Tipos de Tareas",
		"Carga de Trabajo por Persona (Horas)", "Estado de las Tareas",
		"8h", "Bob",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected overview to contain %q", want)
		}
	}
	if strings.Contains(view, "Amy") {
		t.Error("company B assignee must not appear under company A")
	}
}

func TestOverview_ScrollClamped(t *testing.T) {
	services := setupTestServices(t)
	m := NewOverviewModel(testStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 5)
	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{}))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.offset != 0 {
		t.Errorf("offset must not go below 0, got %d", m.offset)
	}
	for i := 0; i < 200; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.offset != m.maxOffset() {
		t.Errorf("offset %d, want max %d", m.offset, m.maxOffset())
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines > 5 {
		t.Errorf("expected at most 5 lines, got %d", lines)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.offset != 0 {
		t.Errorf("home should reset the offset, got %d", m.offset)
	}
}

func TestRenderChart(t *testing.T) {
	styles := testStyles()

	empty := renderChart(styles, "Estado", nil, 10)
	if !strings.Contains(empty, "Sin datos") {
		t.Errorf("expected Sin datos for empty chart, got %q", empty)
	}

	out := renderChart(styles, "Estado", countBars([]stats.Count{{Value: "Done", Count: 4}, {Value: "", Count: 1}}), 8)
	if !strings.Contains(out, strings.Repeat("█", 8)+" 4") {
		t.Errorf("largest bar should span the width, got %q", out)
	}
	if !strings.Contains(out, blankLabel) {
		t.Errorf("empty value should be labelled %q", blankLabel)
	}
	if !strings.Contains(out, "██ 1") {
		t.Errorf("expected a 2-cell bar for 1/4 of 8, got %q", out)
	}

	tiny := renderChart(styles, "Horas", groupBars([]stats.Group{{Key: "Amy", Sum: 0.1}, {Key: "Bob", Sum: 100}}), 10)
	if !strings.Contains(tiny, "█ 0.1h") {
		t.Errorf("positive values get at least one cell, got %q", tiny)
	}
}

func TestRenderChart_NonFiniteValues(t *testing.T) {
	bars := []bar{
		{label: "inf", value: math.Inf(1), text: "inf"},
		{label: "nan", value: math.NaN(), text: "nan"},
		{label: "two", value: 2, text: "2"},
	}
	out := renderChart(testStyles(), "Horas", bars, 6)
	if !strings.Contains(out, strings.Repeat("█", 6)+" inf") {
		t.Errorf("expected +Inf clamped to the width, got %q", out)
	}
	if strings.Contains(out, "█ nan") {
		t.Errorf("expected no bar for NaN, got %q", out)
	}
	if !strings.Contains(out, strings.Repeat("█", 6)+" 2") {
		t.Errorf("expected the largest finite value to span the width, got %q", out)
	}
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"hours integer", formatHours(8), "8"},
		{"hours rounded", formatHours(3.14159), "3.14"},
		{"blank label", labelOrBlank(""), blankLabel},
		{"label", labelOrBlank("Acme"), "Acme"},
		{"truncate short", truncate("abc", 5), "abc"},
		{"truncate long", truncate("abcdefgh", 5), "abcd…"},
		{"pad", padRight("ab", 4), "ab  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

// Tasks

func TestTasks_NavigationAndURL(t *testing.T) {
	services := setupTestServices(t)
	m := NewTasksModel(services, testStyles(), ui.DefaultKeyMap())
	m.SetSize(160, 20)
	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{}))

	if got := m.SelectedURL(); got != "https://summitdev.atlassian.net/browse/SD-1" {
		t.Errorf("unexpected URL %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if r, _ := m.Selected(); r.Code != "SD-2" {
		t.Errorf("expected SD-2 after down, got %s", r.Code)
	}

	m, _ = m.Update(runes("G"))
	if r, _ := m.Selected(); r.Code != "SD-3" {
		t.Errorf("expected SD-3 at end, got %s", r.Code)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if r, _ := m.Selected(); r.Code != "SD-3" {
		t.Error("cursor must stay on the last task")
	}

	m, _ = m.Update(runes("g"))
	if r, _ := m.Selected(); r.Code != "SD-1" {
		t.Errorf("expected SD-1 at start, got %s", r.Code)
	}

	view := m.View()
	for _, want := range []string{"Fecha Inicio", "Código", "Resumen", "Asignado", "2024-01-10", "SD-3", "1/3", "browse/SD-1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected tasks view to contain %q", want)
		}
	}
}

func TestTasks_CursorClampedOnNarrowerView(t *testing.T) {
	services := setupTestServices(t)
	m := NewTasksModel(services, testStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{}))
	m, _ = m.Update(runes("G"))

	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{Company: filter.Equals("B")}))
	r, ok := m.Selected()
	if !ok || r.Code != "SD-3" {
		t.Errorf("expected the only remaining task, got %v %v", r.Code, ok)
	}

	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{Company: filter.Equals("Nobody")}))
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection on an empty view")
	}
	if m.SelectedURL() != "" {
		t.Error("expected empty URL on an empty view")
	}
	if !strings.Contains(m.View(), "No tasks match the current filters") {
		t.Error("expected empty message")
	}
}

func TestTasks_EmptyWorkbook(t *testing.T) {
	services := setupTestServices(t)
	m := NewTasksModel(services, testStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(ui.DashboardUpdatedMsg{Dashboard: &service.Dashboard{}})

	if !strings.Contains(m.View(), "The workbook has no tasks") {
		t.Errorf("expected empty workbook message, got %q", m.View())
	}
}

func TestTasks_PageScroll(t *testing.T) {
	services := setupTestServices(t)
	m := NewTasksModel(services, testStyles(), ui.DefaultKeyMap())
	m.SetSize(160, 4) // one row per page
	m, _ = m.Update(dashboardMsg(t, services, filter.Spec{}))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.cursor != 1 || m.offset != 1 {
		t.Errorf("expected cursor and offset 1, got %d and %d", m.cursor, m.offset)
	}
	if view := m.View(); strings.Contains(view, "SD-1 ") {
		t.Error("scrolled-off row should not render")
	}
}

// Filters

func newFilters(t *testing.T, spec filter.Spec) FiltersModel {
	t.Helper()
	services := setupTestServices(t)
	m := NewFiltersModel(services.Dashboard.Options(testSession()), spec, testStyles(), ui.DefaultKeyMap())
	m.now = func() time.Time { return time.Date(2024, time.February, 10, 15, 0, 0, 0, time.UTC) }
	return m
}

func TestFilters_CycleSelector(t *testing.T) {
	m := newFilters(t, filter.Spec{})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := specOf(t, cmd).Company; got != filter.Equals("A") {
		t.Errorf("expected company A, got %v", got)
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := specOf(t, cmd).Company; got != filter.Equals("B") {
		t.Errorf("expected company B, got %v", got)
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := specOf(t, cmd).Company; !got.IsAny() {
		t.Errorf("expected wrap to Todos, got %v", got)
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := specOf(t, cmd).Company; got != filter.Equals("B") {
		t.Errorf("expected left from Todos to reach the last company, got %v", got)
	}
}

func TestFilters_FieldNavigation(t *testing.T) {
	m := newFilters(t, filter.Spec{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Focus() != FieldTo {
		t.Errorf("up from the first field wraps to Hasta, got %s", m.Focus())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Focus() != FieldStatus {
		t.Errorf("expected Estado, got %s", m.Focus())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := specOf(t, cmd).Status; got != filter.Equals("Done") {
		t.Errorf("expected first sorted status Done, got %v", got)
	}
	if !m.Spec().Company.IsAny() {
		t.Error("other fields must not change")
	}
}

func TestFilters_DateInput(t *testing.T) {
	m := newFilters(t, filter.Spec{})
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	if m.Focus() != FieldFrom {
		t.Fatalf("expected Desde, got %s", m.Focus())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsInputMode() {
		t.Fatal("expected input mode")
	}
	m.input.SetValue("01/01/2024")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsInputMode() {
		t.Error("enter should close the input")
	}
	spec := specOf(t, cmd)
	if spec.Dates.From.String() != "2024-01-01" || spec.Dates.To.Valid {
		t.Errorf("unexpected range %s..%s", spec.Dates.From, spec.Dates.To)
	}

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("2023-12-31")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("an inverted range must not be applied")
	}
	if !m.IsInputMode() {
		t.Error("input stays open on error")
	}
	if !strings.Contains(m.View(), "is after") {
		t.Error("expected the range error in the view")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsInputMode() || m.Spec().Dates.To.Valid {
		t.Error("esc cancels without applying")
	}
}

func TestFilters_RelativeDays(t *testing.T) {
	m := newFilters(t, filter.Spec{})
	m.focus = FieldTo

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("last 7 days")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	spec := specOf(t, cmd)
	if spec.Dates.From.String() != "2024-02-04" || spec.Dates.To.String() != "2024-02-10" {
		t.Errorf("expected 2024-02-04..2024-02-10, got %s..%s", spec.Dates.From, spec.Dates.To)
	}
}

func TestFilters_InvalidDate(t *testing.T) {
	m := newFilters(t, filter.Spec{})
	m.focus = FieldFrom

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("yesterday-ish")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("invalid input must not change the filters")
	}
	if m.err == "" {
		t.Error("expected an error message")
	}
}

func TestFilters_ClearAndReset(t *testing.T) {
	start := filter.Spec{
		Company:  filter.Equals("A"),
		Assignee: filter.Equals("Bob"),
		Dates:    filter.DateRange{From: record.NewDate(2024, time.January, 1), To: record.NewDate(2024, time.January, 31)},
	}
	m := newFilters(t, start)

	m, cmd := m.Update(runes("x"))
	spec := specOf(t, cmd)
	if !spec.Company.IsAny() || spec.Assignee != filter.Equals("Bob") {
		t.Errorf("x clears only the focused field, got %+v", spec)
	}

	m.focus = FieldTo
	m, cmd = m.Update(runes("x"))
	spec = specOf(t, cmd)
	if spec.Dates.To.Valid || !spec.Dates.From.Valid {
		t.Errorf("x on Hasta clears only the upper bound, got %s..%s", spec.Dates.From, spec.Dates.To)
	}

	_, cmd = m.Update(runes("R"))
	if !specOf(t, cmd).IsEmpty() {
		t.Error("R resets every filter")
	}
}

func TestFilters_View(t *testing.T) {
	m := newFilters(t, filter.Spec{Status: filter.Equals("")})
	view := m.View()

	for _, want := range []string{"Filtros", "Empresa", "< Todos >", "< " + blankLabel + " >", "Desde", "(sin límite)", "2024-01-10 to 2024-02-01"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected filters view to contain %q", want)
		}
	}
}
