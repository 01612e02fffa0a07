package domain

import (
	"path/filepath"
	"time"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "slipway.toml"

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "slipway")
}

// ProjectConfig holds the [project] section.
type ProjectConfig struct {
	// Start is the project anchor date as an ISO date string. Empty means
	// derive the anchor from the earliest planned start in the schedule.
	Start string
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// OutputConfig holds the [output] section.
type OutputConfig struct {
	CriticalOnly bool // restrict tabular output to critical-path activities
}

// Config is the application configuration.
type Config struct {
	Project ProjectConfig
	Log     LogConfig
	Output  OutputConfig

	// Warnings collects non-fatal findings from loading (unknown keys,
	// unknown sections). Surfaced once at startup.
	Warnings []string
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "warn"},
	}
}

// ProjectStart parses the configured anchor date. The zero time and nil
// error mean no anchor is configured.
func (c *Config) ProjectStart() (time.Time, error) {
	if c.Project.Start == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", c.Project.Start)
}
