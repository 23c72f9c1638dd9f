package handlers

import (
	"fmt"
	"strings"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/service"
)

// ShowSummary prints the four metrics and the four breakdown charts.
func ShowSummary(deps *cli.Deps, req Request) {
	sess, ok := loadSession(deps, req.Path)
	if !ok {
		return
	}
	d := compute(deps, sess, req.Spec)

	out := deps.Stdout
	_, _ = fmt.Fprintln(out, cli.SectionTitle("Dashboard de Gestión de Proyectos"))
	_, _ = fmt.Fprintln(out, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(out, "Filters: %s\n", DescribeSpec(req.Spec))
	_, _ = fmt.Fprintln(out, strings.Repeat("-", 60))
	printMetrics(deps, d)
	_, _ = fmt.Fprintln(out)

	charts := []struct {
		title string
		bars  []cli.Bar
	}{
		{"Distribución de Tareas por Empresa", cli.CountBars(d.Companies)},
		{"Distribución de Tipos de Tareas", cli.CountBars(d.TaskTypes)},
		{"Carga de Trabajo por Persona (Horas)", cli.GroupBars(d.Workload)},
		{"Estado de las Tareas", cli.CountBars(d.Statuses)},
	}
	for i, c := range charts {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		if err := cli.RenderBars(out, c.title, c.bars, cli.DefaultBarWidth); err != nil {
			deps.Fail("Failed to write output", err, "")
			return
		}
	}
}

func printMetrics(deps *cli.Deps, d *service.Dashboard) {
	m := d.Metrics
	_, _ = fmt.Fprintf(deps.Stdout, "Total Tareas:       %d\n", m.TotalCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Total Horas:        %s\n", cli.FormatHours(m.TotalHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Tareas en Proceso:  %d\n", m.InProgressCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Personal Activo:    %d\n", m.DistinctAssignees)
}

// DescribeSpec renders spec as "Empresa=A Estado=Todos ..." for headers.
func DescribeSpec(spec filter.Spec) string {
	parts := []string{
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
	return strings.Join(parts, " ")
}
