package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/borchsolutions/tablero/internal/filter"
)

func TestReportService_Build(t *testing.T) {
	svcs := newTestServices(t)
	fixed := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svcs.Report.now = func() time.Time { return fixed }

	sess, err := svcs.Dashboard.Load(writeWorkbook(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := svcs.Dashboard.Compute(sess, filter.Spec{Assignee: filter.Equals("Bob")})

	r := svcs.Report.Build(sess, d)
	if r.Source != sess.Path || r.Sheet != "Sheet1" {
		t.Errorf("unexpected source %q [%q]", r.Source, r.Sheet)
	}
	if !r.GeneratedAt.Equal(fixed) {
		t.Errorf("expected GeneratedAt %v, got %v", fixed, r.GeneratedAt)
	}
	if r.Filters.Assignee != "Bob" || r.Filters.Company != filter.AllLabel {
		t.Errorf("unexpected filters %+v", r.Filters)
	}
	if len(r.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(r.Tasks))
	}
	if r.Tasks[0].URL != "https://summitdev.atlassian.net/browse/SD-1" {
		t.Errorf("unexpected url %q", r.Tasks[0].URL)
	}
	if r.Tasks[0].StartDate != "2024-01-10" {
		t.Errorf("unexpected start date %q", r.Tasks[0].StartDate)
	}
}

func TestReportService_Write(t *testing.T) {
	svcs := newTestServices(t)
	sess, err := svcs.Dashboard.Load(writeWorkbook(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := svcs.Dashboard.Compute(sess, filter.Spec{})

	var buf bytes.Buffer
	if err := svcs.Report.Write("json", sess, d, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Metrics struct {
			TotalCount int `json:"total_count"`
		} `json:"metrics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Metrics.TotalCount != 3 {
		t.Errorf("expected total_count 3, got %d", got.Metrics.TotalCount)
	}

	buf.Reset()
	if err := svcs.Report.Write("html", sess, d, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `target="_blank">SD-3</a>`) {
		t.Error("expected linked issue code in html report")
	}

	if err := svcs.Report.Write("docx", sess, d, &buf); err == nil {
		t.Error("expected error for unknown format")
	}
}
