package handlers

import (
	"fmt"

	"github.com/borchsolutions/tablero/internal/cli"
)

const summaryWidth = 48

// ListTasks prints the detail table of the filtered view followed by the
// issue links.
func ListTasks(deps *cli.Deps, req Request, showURLs bool) {
	sess, ok := loadSession(deps, req.Path)
	if !ok {
		return
	}
	d := compute(deps, sess, req.Spec)

	if d.View.Len() == 0 {
		if req.Spec.IsEmpty() {
			_, _ = fmt.Fprintln(deps.Stdout, "The workbook has no tasks")
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No tasks found for %s\n", DescribeSpec(req.Spec))
		}
		return
	}

	tbl := cli.NewTable(
		cli.Column{Header: "Fecha Inicio"},
		cli.Column{Header: "Código"},
		cli.Column{Header: "Tipo"},
		cli.Column{Header: "Horas", Align: cli.AlignRight},
		cli.Column{Header: "Empresa"},
		cli.Column{Header: "Tipo Tarea"},
		cli.Column{Header: "Resumen", MaxWidth: summaryWidth},
		cli.Column{Header: "Estado"},
		cli.Column{Header: "Asignado"},
	)
	for _, r := range d.View.Records {
		tbl.AddRow(r.StartDate.String(), r.Code, r.Type, cli.FormatHours(r.Hours),
			r.Company, r.TaskType, r.Summary, r.Status, r.Assignee)
	}
	if err := tbl.Render(deps.Stdout); err != nil {
		deps.Fail("Failed to write output", err, "")
		return
	}

	n := d.View.Len()
	_, _ = fmt.Fprintf(deps.Stdout, "\n%d %s, %s h\n", n, cli.Pluralize("task", n), cli.FormatHours(d.Metrics.TotalHours))

	if !showURLs {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	for _, r := range d.View.Records {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s\n", r.Code, deps.Services.Dashboard.IssueURL(r.Code))
	}
}
