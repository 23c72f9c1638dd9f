package service

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/borchsolutions/tablero/internal/config"
	"github.com/borchsolutions/tablero/internal/output"
)

// ReportService turns dashboards into exported reports
type ReportService struct {
	config config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(cfg config.Config, logger *slog.Logger) *ReportService {
	return &ReportService{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Build assembles the report for d.
func (s *ReportService) Build(sess *Session, d *Dashboard) *output.Report {
	return &output.Report{
		Source:      sess.Path,
		Sheet:       sess.Sheet,
		GeneratedAt: s.now(),
		Filters:     output.FiltersOf(d.Spec),
		Metrics:     d.Metrics,
		Companies:   d.Companies,
		TaskTypes:   d.TaskTypes,
		Workload:    d.Workload,
		Statuses:    d.Statuses,
		Undated:     d.Undated,
		Tasks:       output.TasksOf(d.View, s.config.TrackerHost),
	}
}

// Write renders the report for d in the named format to w.
func (s *ReportService) Write(format string, sess *Session, d *Dashboard, w io.Writer) error {
	f, err := output.GetFormatter(format)
	if err != nil {
		return err
	}

	if err := f.Format(s.Build(sess, d), w); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}

	s.log().Info("report exported", "session", sess.ID, "format", f.Name(), "tasks", d.View.Len())
	return nil
}

// log returns the service logger, falling back to the current slog default.
func (s *ReportService) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
