// Package config loads the TOML configuration file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/borchsolutions/tablero/internal/app"
	"github.com/borchsolutions/tablero/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// DefaultTrackerHost is the host issue links point to.
	DefaultTrackerHost = "summitdev.atlassian.net"
	// DefaultInProgressStatus is the status counted as in progress.
	DefaultInProgressStatus = "En proceso"
	// DefaultTheme is the TUI colour theme.
	DefaultTheme = "dracula"
	// DefaultLogLevel is the slog level used without --verbose/--quiet.
	DefaultLogLevel = "warn"
)

// Environment variables that override file values.
const (
	EnvTrackerHost = "TABLERO_TRACKER_HOST"
	EnvSheet       = "TABLERO_SHEET"
	EnvLogLevel    = "TABLERO_LOG_LEVEL"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	// TrackerHost is the host part of issue links: https://<host>/browse/<code>
	TrackerHost      string `toml:"tracker_host"`
	// InProgressStatus is the status label counted by the "in progress" metric
	InProgressStatus string `toml:"in_progress_status"`
	// Sheet is the workbook sheet to read; empty reads the first sheet
	Sheet            string `toml:"sheet"`
	// Theme is the bubbletint theme id used by the TUI
	Theme            string `toml:"theme"`
	// LogLevel is one of debug, info, warn, error
	LogLevel         string `toml:"log_level"`
}

// DefaultConfig returns a Config with the defaults used when no file exists.
func DefaultConfig() Config {
	return Config{
		TrackerHost:      DefaultTrackerHost,
		InProgressStatus: DefaultInProgressStatus,
		Sheet:            "",
		Theme:            DefaultTheme,
		LogLevel:         DefaultLogLevel,
	}
}

// GetConfigPath returns the path to the config file.
// The directory is created if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppConfigDir(app.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path. Keys absent from the
// file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns DefaultConfig when the file does not exist.
// Any other failure (unreadable, invalid) is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// ApplyEnv overrides values from the environment and revalidates.
func (c Config) ApplyEnv(getenv func(string) string) (Config, error) {
	if v := getenv(EnvTrackerHost); v != "" {
		c.TrackerHost = v
	}
	if v := getenv(EnvSheet); v != "" {
		c.Sheet = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	c.Normalize()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid environment override: %w", err)
	}
	return c, nil
}

// Normalize trims values and lowercases the case-insensitive ones.
func (c *Config) Normalize() {
	c.TrackerHost = strings.ToLower(strings.TrimSpace(c.TrackerHost))
	c.InProgressStatus = strings.TrimSpace(c.InProgressStatus)
	c.Theme = strings.TrimSpace(c.Theme)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validateHost(c.TrackerHost); err != nil {
		return err
	}
	if c.InProgressStatus == "" {
		return fmt.Errorf("in_progress_status cannot be empty")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (use one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// validateHost accepts a bare host with optional port, e.g. "acme.atlassian.net".
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("tracker_host cannot be empty")
	}
	if strings.Contains(host, "://") || strings.ContainsAny(host, "/?# ") {
		return fmt.Errorf("invalid tracker_host %q: use a bare host name such as %q", host, DefaultTrackerHost)
	}
	u, err := url.Parse("https://" + host)
	if err != nil || u.Host != host {
		return fmt.Errorf("invalid tracker_host %q", host)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// GenerateSampleConfig returns a commented sample configuration file.
func GenerateSampleConfig() string {
	return `# tablero configuration

# Host of the issue tracker. Issue codes link to https://<host>/browse/<code>
# tracker_host = "` + DefaultTrackerHost + `"

# Status label counted by the "Tareas en Proceso" metric
# in_progress_status = "` + DefaultInProgressStatus + `"

# Workbook sheet to read. Empty reads the first sheet.
# sheet = ""

# TUI colour theme (any bubbletint theme id)
# theme = "` + DefaultTheme + `"

# Log level: debug, info, warn, error
# log_level = "` + DefaultLogLevel + `"
`
}

// Resolve loads path, falling back to the defaults when it does not exist,
// and applies the environment overrides read through getenv.
func Resolve(path string, getenv func(string) string) (Config, error) {
	cfg, err := LoadOrDefault(path)
	if err != nil {
		return Config{}, err
	}
	return cfg.ApplyEnv(getenv)
}
