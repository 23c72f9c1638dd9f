package output

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/borchsolutions/tablero/internal/stats"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the report as a self-contained HTML page.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes r to w as a dashboard page with metric cards, breakdown
// bars and the detail table. Issue codes link to the tracker in a new tab.
func (h *HTMLFormatter) Format(r *Report, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"hours":     formatHours,
			"issueHref": issueHref,
		}).Parse(htmlTemplate))
	})

	if err := htmlTmpl.Execute(w, buildHTMLData(r)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML page.
type htmlData struct {
	*Report
	Generated string
	Charts    []htmlChart
}

type htmlChart struct {
	Title string
	Unit  string
	Bars  []htmlBar
}

type htmlBar struct {
	Label   string
	Value   string
	Percent int
}

func buildHTMLData(r *Report) htmlData {
	d := htmlData{
		Report:    r,
		Generated: r.GeneratedAt.Format("2006-01-02 15:04"),
	}

	d.Charts = append(d.Charts,
		countChart("Distribución de Tareas por Empresa", r.Companies),
		countChart("Distribución de Tipos de Tareas", r.TaskTypes),
		groupChart("Carga de Trabajo por Persona (Horas)", r.Workload),
		countChart("Estado de las Tareas", r.Statuses),
	)
	return d
}

func countChart(title string, counts []stats.Count) htmlChart {
	c := htmlChart{Title: title, Unit: "tareas"}
	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n.Count)
	}
	for _, n := range counts {
		c.Bars = append(c.Bars, htmlBar{
			Label:   labelOrBlank(n.Value),
			Value:   strconv.Itoa(n.Count),
			Percent: percent(float64(n.Count), float64(maxCount)),
		})
	}
	return c
}

func groupChart(title string, groups []stats.Group) htmlChart {
	c := htmlChart{Title: title, Unit: "horas"}
	var maxSum float64
	for _, g := range groups {
		maxSum = max(maxSum, g.Sum)
	}
	for _, g := range groups {
		c.Bars = append(c.Bars, htmlBar{
			Label:   labelOrBlank(g.Key),
			Value:   formatHours(g.Sum),
			Percent: percent(g.Sum, maxSum),
		})
	}
	return c
}

func percent(v, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(v / total * 100)
}

// labelOrBlank names the group of records with an empty value.
func labelOrBlank(s string) string {
	if s == "" {
		return "(vacío)"
	}
	return s
}

// issueHref renders the href attribute of an issue link. The URL is written
// as built, with HTML entity escaping only. Non-https URLs become "#".
func issueHref(url string) template.HTMLAttr {
	if !strings.HasPrefix(url, "https://") {
		return `href="#"`
	}
	return template.HTMLAttr(`href="` + html.EscapeString(url) + `"`)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
