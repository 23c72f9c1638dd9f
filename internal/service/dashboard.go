package service

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/loader"
	"github.com/borchsolutions/tablero/internal/record"
	"github.com/borchsolutions/tablero/internal/stats"
)

// DashboardService loads workbooks and computes dashboards over them
type DashboardService struct {
	config config.Config
	logger *slog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(cfg config.Config, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		config: cfg,
		logger: logger,
	}
}

// Load reads the workbook at path into a new session.
// The sheet comes from the configuration; empty means the first sheet.
func (s *DashboardService) Load(path string) (*Session, error) {
	res, err := loader.LoadFile(path, loader.Options{Sheet: s.config.Sheet})
	if err != nil {
		s.log().Debug("workbook load failed", "path", path, "error", err)
		return nil, err
	}

	sess := &Session{
		ID:       uuid.New(),
		Path:     path,
		Sheet:    res.Sheet,
		Table:    res.Table,
		Warnings: res.Warnings,
	}

	s.log().Info("workbook loaded",
		"session", sess.ID,
		"path", path,
		"sheet", sess.Sheet,
		"records", sess.Table.Len(),
		"warnings", len(sess.Warnings))
	for _, w := range sess.Warnings {
		s.log().Debug("cell treated as missing", "session", sess.ID, "row", w.Row, "column", w.Column.String(), "value", w.Value)
	}

	return sess, nil
}

// Compute filters the session table by spec and aggregates the view.
// The session is never modified.
func (s *DashboardService) Compute(sess *Session, spec filter.Spec) *Dashboard {
	view := filter.Apply(sess.Table, spec)

	d := &Dashboard{
		Spec:      spec,
		View:      view,
		Metrics:   stats.SummarizeWith(view, s.config.InProgressStatus),
		Companies: stats.DistinctCounts(view, record.ColCompany),
		TaskTypes: stats.DistinctCounts(view, record.ColTaskType),
		Workload:  stats.Workload(view),
		Statuses:  stats.DistinctCounts(view, record.ColStatus),
		Undated:   filter.Undated(sess.Table, spec),
	}

	s.log().Debug("dashboard computed",
		"session", sess.ID,
		"company", spec.Company.String(),
		"status", spec.Status.String(),
		"assignee", spec.Assignee.String(),
		"from", spec.Dates.From.String(),
		"to", spec.Dates.To.String(),
		"records", view.Len(),
		"undated", d.Undated)

	return d
}

// Options returns the selector candidates of the session's base table.
func (s *DashboardService) Options(sess *Session) FilterOptions {
	return FilterOptions{
		Companies: filter.Options(sess.Table, record.ColCompany),
		Statuses:  filter.Options(sess.Table, record.ColStatus),
		Assignees: filter.Options(sess.Table, record.ColAssignee),
		Dates:     filter.StartDateBounds(sess.Table),
	}
}

// IssueURL returns the tracker link for code using the configured host.
func (s *DashboardService) IssueURL(code string) string {
	return record.IssueURL(s.config.TrackerHost, code)
}

// log returns the service logger, falling back to the current slog default.
func (s *DashboardService) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
