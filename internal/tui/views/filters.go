package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/service"
	"github.com/borchsolutions/tablero/internal/timeutil"
	"github.com/borchsolutions/tablero/internal/tui/ui"
)

// Field identifies one row of the filter form.
type Field int

const (
	FieldCompany Field = iota
	FieldStatus
	FieldAssignee
	FieldFrom
	FieldTo
)

var fieldNames = []string{"Empresa", "Estado", "Asignado", "Desde", "Hasta"}

func (f Field) String() string {
	return fieldNames[f]
}

func (f Field) isDate() bool {
	return f == FieldFrom || f == FieldTo
}

// FiltersModel edits the filter spec. Selector fields cycle through
// "Todos" and the distinct values; date fields are typed in.
type FiltersModel struct {
	styles ui.Styles
	keys   ui.KeyMap
	now    func() time.Time

	options service.FilterOptions
	spec    filter.Spec
	focus   Field
	editing bool
	input   textinput.Model
	err     string
	width   int
	height  int
}

// NewFiltersModel creates a new filters view model
func NewFiltersModel(options service.FilterOptions, spec filter.Spec, styles ui.Styles, keys ui.KeyMap) FiltersModel {
	input := textinput.New()
	input.Placeholder = "YYYY-MM-DD, DD/MM/YYYY or 'last N days'"
	input.CharLimit = 32
	input.Width = 40

	return FiltersModel{
		styles:  styles,
		keys:    keys,
		now:     time.Now,
		options: options,
		spec:    spec,
		input:   input,
	}
}

// Spec returns the filters currently applied.
func (m FiltersModel) Spec() filter.Spec {
	return m.spec
}

// Focus returns the field under the cursor.
func (m FiltersModel) Focus() Field {
	return m.focus
}

// IsInputMode reports whether a date is being typed.
func (m FiltersModel) IsInputMode() bool {
	return m.editing
}

// Update implements tea.Model
func (m FiltersModel) Update(msg tea.Msg) (FiltersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		return m.updateForm(msg)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

func (m FiltersModel) updateForm(msg tea.KeyMsg) (FiltersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus = Field((int(m.focus) - 1 + len(fieldNames)) % len(fieldNames))
		m.err = ""

	case key.Matches(msg, m.keys.Down):
		m.focus = Field((int(m.focus) + 1) % len(fieldNames))
		m.err = ""

	case key.Matches(msg, m.keys.Left):
		if !m.focus.isDate() {
			return m.cycle(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if !m.focus.isDate() {
			return m.cycle(1)
		}

	case key.Matches(msg, m.keys.Select):
		if m.focus.isDate() {
			m.editing = true
			m.err = ""
			m.input.SetValue(m.dateBound(m.focus).String())
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Clear):
		return m.clear(m.focus)

	case key.Matches(msg, m.keys.Reset):
		m.spec = filter.Spec{}
		m.err = ""
		return m, m.changed()
	}

	return m, nil
}

func (m FiltersModel) updateInput(msg tea.KeyMsg) (FiltersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		dates, err := m.parseDateInput(m.focus, strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.err = ""
		m.spec.Dates = dates
		return m, m.changed()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseDateInput applies text typed into a date field to the current range.
// Empty text clears the bound; "last N days" sets both bounds.
func (m FiltersModel) parseDateInput(field Field, text string) (filter.DateRange, error) {
	dates := m.spec.Dates

	if text == "" {
		setBound(&dates, field, record.Date{})
		return dates, nil
	}

	if strings.HasPrefix(strings.ToLower(text), "last") {
		start, end, err := timeutil.ParseRelativeDays(strings.ToLower(text), m.now())
		if err != nil {
			return dates, err
		}
		return filter.DateRange{From: record.DateOf(start), To: record.DateOf(end)}, nil
	}

	t, err := timeutil.ParseDate(text)
	if err != nil {
		return dates, err
	}
	setBound(&dates, field, record.DateOf(t))

	if dates.From.Valid && dates.To.Valid && dates.From.Compare(dates.To) > 0 {
		return m.spec.Dates, fmt.Errorf("from date (%s) is after to date (%s)", dates.From, dates.To)
	}
	return dates, nil
}

func setBound(dates *filter.DateRange, field Field, d record.Date) {
	if field == FieldFrom {
		dates.From = d
	} else {
		dates.To = d
	}
}

func (m FiltersModel) dateBound(field Field) record.Date {
	if field == FieldFrom {
		return m.spec.Dates.From
	}
	return m.spec.Dates.To
}

// cycle moves a selector field through Todos and its candidate values.
func (m FiltersModel) cycle(step int) (FiltersModel, tea.Cmd) {
	values := m.values(m.focus)
	sel := m.selector(m.focus)

	// Position 0 is Todos; values start at 1.
	pos := 0
	if v, ok := sel.Value(); ok {
		for i, candidate := range values {
			if candidate == v {
				pos = i + 1
				break
			}
		}
	}
	n := len(values) + 1
	pos = ((pos+step)%n + n) % n

	next := filter.Any()
	if pos > 0 {
		next = filter.Equals(values[pos-1])
	}
	m.setSelector(m.focus, next)
	m.err = ""
	return m, m.changed()
}

func (m FiltersModel) clear(field Field) (FiltersModel, tea.Cmd) {
	switch field {
	case FieldFrom:
		m.spec.Dates.From = record.Date{}
	case FieldTo:
		m.spec.Dates.To = record.Date{}
	default:
		m.setSelector(field, filter.Any())
	}
	m.err = ""
	return m, m.changed()
}

func (m FiltersModel) values(field Field) []string {
	switch field {
	case FieldCompany:
		return m.options.Companies
	case FieldStatus:
		return m.options.Statuses
	case FieldAssignee:
		return m.options.Assignees
	}
	return nil
}

func (m FiltersModel) selector(field Field) filter.Selector {
	switch field {
	case FieldCompany:
		return m.spec.Company
	case FieldStatus:
		return m.spec.Status
	case FieldAssignee:
		return m.spec.Assignee
	}
	return filter.Any()
}

func (m *FiltersModel) setSelector(field Field, s filter.Selector) {
	switch field {
	case FieldCompany:
		m.spec.Company = s
	case FieldStatus:
		m.spec.Status = s
	case FieldAssignee:
		m.spec.Assignee = s
	}
}

func (m FiltersModel) changed() tea.Cmd {
	spec := m.spec
	return func() tea.Msg {
		return ui.FiltersChangedMsg{Spec: spec}
	}
}

// View implements tea.Model
func (m FiltersModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Filtros"))
	b.WriteString("\n")

	for i := range fieldNames {
		f := Field(i)
		cursor := "  "
		label := m.styles.FieldLabel.Render(f.String())
		value := m.fieldText(f)
		if f == m.focus {
			cursor = m.styles.FieldFocused.Render("> ")
			value = m.styles.FieldFocused.Render(value)
		} else {
			value = m.styles.FieldValue.Render(value)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, value)

		if f == m.focus && m.editing {
			b.WriteString("  ")
			b.WriteString(m.styles.Input.Render(m.input.View()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(m.styles.Error.Render("Error: " + m.err))
		b.WriteString("\n")
	}
	if bounds := m.options.Dates; !bounds.IsOpen() {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Fecha Inicio in the workbook: %s to %s", bounds.From, bounds.To)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m FiltersModel) fieldText(f Field) string {
	if f.isDate() {
		d := m.dateBound(f)
		if !d.Valid {
			return "(sin límite)"
		}
		return d.String()
	}

	sel := m.selector(f)
	if v, ok := sel.Value(); ok {
		text := labelOrBlank(v)
		if len(m.values(f)) > 0 {
			return "< " + text + " >"
		}
		return text
	}
	if len(m.values(f)) > 0 {
		return "< " + filter.AllLabel + " >"
	}
	return filter.AllLabel
}

// SetSize sets the view dimensions
func (m *FiltersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
