package handlers

import (
	"os"
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Using defaults (no config file)") {
		t.Errorf("expected defaults status, got:\n%s", out)
	}
	if !strings.Contains(out, `tracker_host = "summitdev.atlassian.net"`) {
		t.Errorf("expected tracker_host, got:\n%s", out)
	}
	if !strings.Contains(out, `in_progress_status = "En proceso"`) {
		t.Errorf("expected in_progress_status, got:\n%s", out)
	}
}

func TestInitConfig(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created config file") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if _, err := os.Stat(deps.Services.Config.GetPath()); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	InitConfig(deps)
	if *exitCode != 1 {
		t.Errorf("expected exit code 1 on second init, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected already exists error, got %q", stderr.String())
	}
}

func TestShowConfigPath(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	ShowConfigPath(deps)

	if strings.TrimSpace(stdout.String()) != deps.Services.Config.GetPath() {
		t.Errorf("unexpected path output %q", stdout.String())
	}
}
