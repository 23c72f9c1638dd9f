package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/timeutil"
)

// addFilterFlags registers the selector and date range flags on c.
func addFilterFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("company", "", "Only tasks of this company (Empresa)")
	f.String("status", "", "Only tasks with this status (Estado)")
	f.String("assignee", "", "Only tasks assigned to this person (Asignado)")
	f.String("from", "", "Start date on or after (YYYY-MM-DD or DD/MM/YYYY)")
	f.String("to", "", "Start date on or before (YYYY-MM-DD or DD/MM/YYYY)")
	f.Int("last", 0, "Start date within the last N days, including today")
}

// filterSpec builds a filter.Spec from the flags of c. A selector flag that
// was not given places no constraint; an explicit empty value matches
// records whose field is empty.
func filterSpec(c *cobra.Command, now time.Time) (filter.Spec, error) {
	var spec filter.Spec
	spec.Company = selectorFlag(c, "company")
	spec.Status = selectorFlag(c, "status")
	spec.Assignee = selectorFlag(c, "assignee")

	from, _ := c.Flags().GetString("from")
	to, _ := c.Flags().GetString("to")
	last, _ := c.Flags().GetInt("last")

	start, end, err := timeutil.ParseDateRangeFlags(from, to, last, now)
	if err != nil {
		return filter.Spec{}, err
	}
	if !start.IsZero() {
		spec.Dates.From = record.DateOf(start)
	}
	if !end.IsZero() {
		spec.Dates.To = record.DateOf(end)
	}
	return spec, nil
}

func selectorFlag(c *cobra.Command, name string) filter.Selector {
	if !c.Flags().Changed(name) {
		return filter.Any()
	}
	v, _ := c.Flags().GetString(name)
	return filter.Equals(v)
}
