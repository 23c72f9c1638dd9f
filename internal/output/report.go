package output

import (
	"time"

	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/stats"
)

// Report is the exported form of one dashboard pass.
type Report struct {
	Source      string        `json:"source" yaml:"source"`
	Sheet       string        `json:"sheet" yaml:"sheet"`
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Filters     Filters       `json:"filters" yaml:"filters"`
	Metrics     stats.Metrics `json:"metrics" yaml:"metrics"`
	Companies   []stats.Count `json:"tasks_by_company" yaml:"tasks_by_company"`
	TaskTypes   []stats.Count `json:"tasks_by_task_type" yaml:"tasks_by_task_type"`
	Workload    []stats.Group `json:"hours_by_assignee" yaml:"hours_by_assignee"`
	Statuses    []stats.Count `json:"tasks_by_status" yaml:"tasks_by_status"`
	// Undated is the number of records dropped only because their start
	// date is missing.
	Undated     int           `json:"undated_excluded" yaml:"undated_excluded"`
	Tasks       []Task        `json:"tasks" yaml:"tasks"`
}

// Filters records the criteria a report was produced with.
// Unconstrained selectors hold filter.AllLabel; open date bounds are empty.
type Filters struct {
	Company  string `json:"company" yaml:"company"`
	Status   string `json:"status" yaml:"status"`
	Assignee string `json:"assignee" yaml:"assignee"`
	From     string `json:"from,omitempty" yaml:"from,omitempty"`
	To       string `json:"to,omitempty" yaml:"to,omitempty"`
}

// FiltersOf describes spec for a report.
func FiltersOf(spec filter.Spec) Filters {
	return Filters{
		Company:  spec.Company.String(),
		Status:   spec.Status.String(),
		Assignee: spec.Assignee.String(),
		From:     spec.Dates.From.String(),
		To:       spec.Dates.To.String(),
	}
}

// Task is one row of the detail table.
type Task struct {
	StartDate string  `json:"start_date" yaml:"start_date"`
	Code      string  `json:"code" yaml:"code"`
	URL       string  `json:"url" yaml:"url"`
	Type      string  `json:"type" yaml:"type"`
	Hours     float64 `json:"hours" yaml:"hours"`
	Company   string  `json:"company" yaml:"company"`
	TaskType  string  `json:"task_type" yaml:"task_type"`
	Summary   string  `json:"summary" yaml:"summary"`
	Status    string  `json:"status" yaml:"status"`
	Assignee  string  `json:"assignee" yaml:"assignee"`
}

// TasksOf converts view into detail rows linking to host.
func TasksOf(view record.Table, host string) []Task {
	tasks := make([]Task, 0, view.Len())
	for _, r := range view.Records {
		tasks = append(tasks, Task{
			StartDate: r.StartDate.String(),
			Code:      r.Code,
			URL:       record.IssueURL(host, r.Code),
			Type:      r.Type,
			Hours:     r.Hours,
			Company:   r.Company,
			TaskType:  r.TaskType,
			Summary:   r.Summary,
			Status:    r.Status,
			Assignee:  r.Assignee,
		})
	}
	return tasks
}

// normalized returns a copy of r whose nil slices are empty, so that
// encoders emit [] rather than null.
func (r *Report) normalized() *Report {
	c := *r
	if c.Companies == nil {
		c.Companies = []stats.Count{}
	}
	if c.TaskTypes == nil {
		c.TaskTypes = []stats.Count{}
	}
	if c.Workload == nil {
		c.Workload = []stats.Group{}
	}
	if c.Statuses == nil {
		c.Statuses = []stats.Count{}
	}
	if c.Tasks == nil {
		c.Tasks = []Task{}
	}
	return &c
}
