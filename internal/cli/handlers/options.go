package handlers

import (
	"fmt"
	"strings"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/filter"
)

// ShowOptions prints the selector choices offered for the workbook at path
// and the span of its start dates.
func ShowOptions(deps *cli.Deps, path string) {
	sess, ok := loadSession(deps, path)
	if !ok {
		return
	}
	opts := deps.Services.Dashboard.Options(sess)

	out := deps.Stdout
	lists := []struct {
		name   string
		values []string
	}{
		{"Empresa", opts.Companies},
		{"Estado", opts.Statuses},
		{"Asignado", opts.Assignees},
	}
	for _, l := range lists {
		_, _ = fmt.Fprintln(out, cli.SectionTitle(l.name))
		for _, v := range append([]string{filter.AllLabel}, l.values...) {
			_, _ = fmt.Fprintf(out, "  %s\n", v)
		}
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintln(out, cli.SectionTitle("Fecha Inicio"))
	if opts.Dates.IsOpen() {
		_, _ = fmt.Fprintln(out, "  no valid start dates")
	} else {
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Join([]string{opts.Dates.From.String(), opts.Dates.To.String()}, " .. "))
	}
	if n := sess.InvalidDates(); n > 0 {
		_, _ = fmt.Fprintf(out, "  %d %s with an unparseable date\n", n, cli.Pluralize("cell", n))
	}
}
