// Package stats computes summary metrics and grouped breakdowns over a
// filtered view of records. Every function is total over the empty view and
// leaves its input untouched.
package stats

import (
	"fmt"
	"sort"

	"github.com/borchsolutions/tablero/internal/record"
)

// InProgressStatus is the status label counted as "in progress".
const InProgressStatus = "En proceso"

// Metrics contains the scalar summary of a view
type Metrics struct {
	TotalCount        int     `json:"total_count" yaml:"total_count"`
	TotalHours        float64 `json:"total_hours" yaml:"total_hours"`
	InProgressCount   int     `json:"in_progress_count" yaml:"in_progress_count"`
	DistinctAssignees int     `json:"distinct_assignees" yaml:"distinct_assignees"`
}

// Group is one row of a grouped sum
type Group struct {
	Key string  `json:"key" yaml:"key"`
	Sum float64 `json:"sum" yaml:"sum"`
}

// Count is one distinct value with its number of occurrences
type Count struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Summarize computes the metrics of view using InProgressStatus.
func Summarize(view record.Table) Metrics {
	return SummarizeWith(view, InProgressStatus)
}

// SummarizeWith computes the metrics of view, counting records whose status
// equals inProgress exactly. Absent hours are stored as zero and so add
// nothing to TotalHours. An empty assignee is a distinct value of its own.
func SummarizeWith(view record.Table, inProgress string) Metrics {
	m := Metrics{TotalCount: view.Len()}
	assignees := make(map[string]struct{})

	for _, r := range view.Records {
		m.TotalHours += r.Hours
		if r.Status == inProgress {
			m.InProgressCount++
		}
		assignees[r.Assignee] = struct{}{}
	}

	m.DistinctAssignees = len(assignees)
	return m
}

// GroupSum groups view by groupCol and sums sumCol per group.
// The result is ordered by ascending sum, ties broken by key.
func GroupSum(view record.Table, groupCol, sumCol record.Column) ([]Group, error) {
	if !sumCol.Numeric() {
		return nil, fmt.Errorf("group %s by %s: %w", sumCol, groupCol, record.ErrNotNumeric)
	}

	sums := make(map[string]float64)
	for _, r := range view.Records {
		v, err := r.Number(sumCol)
		if err != nil {
			return nil, err
		}
		sums[r.Text(groupCol)] += v
	}

	groups := make([]Group, 0, len(sums))
	for k, s := range sums {
		groups = append(groups, Group{Key: k, Sum: s})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Sum != groups[j].Sum {
			return groups[i].Sum < groups[j].Sum
		}
		return groups[i].Key < groups[j].Key
	})

	return groups, nil
}

// Workload returns hours per assignee in ascending order.
func Workload(view record.Table) []Group {
	// Hours is numeric, so GroupSum cannot fail here.
	groups, _ := GroupSum(view, record.ColAssignee, record.ColHours)
	return groups
}

// DistinctCounts returns each distinct value of col with its occurrence count.
// Output is ordered by descending count then value so that rendering is
// stable; callers must not rely on any particular order.
func DistinctCounts(view record.Table, col record.Column) []Count {
	counts := make(map[string]int)
	for _, r := range view.Records {
		counts[r.Text(col)]++
	}

	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	return out
}
