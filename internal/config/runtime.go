// Package config provides centralized configuration for SkillHub runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds all runtime configuration values that were previously
// hardcoded as magic values throughout the codebase.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Session configuration
	Session SessionConfig

	// Output configuration
	Output OutputConfig

	// Dashboard configuration
	Dashboard DashboardConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// DatabasePath is the path to the database directory. Empty means the
	// default XDG data location.
	DatabasePath string

	// InMemory runs the store without touching disk. Set via
	// SKILLHUB_DATABASE=:memory:.
	InMemory bool
}

// SessionConfig holds session-related configuration.
type SessionConfig struct {
	// User is the identity records are partitioned by. Empty falls back
	// to the guest partition.
	User string
}

// OutputConfig holds output-related configuration.
type OutputConfig struct {
	// Format is the default output format: cli, json or plain.
	// Default: cli
	Format string

	// Color is the color mode: auto, always or never.
	// Default: auto
	Color string
}

// DashboardConfig holds dashboard-related configuration.
type DashboardConfig struct {
	// RefreshInterval is how often the dashboard refetches its snapshot.
	// Default: 2s
	RefreshInterval time.Duration

	// MaxRecent is the number of recent records shown per section.
	// Default: 5
	MaxRecent int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{},
		Session: SessionConfig{},
		Output: OutputConfig{
			Format: "cli",
			Color:  "auto",
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 2 * time.Second,
			MaxRecent:       5,
		},
	}
}

// FromEnv returns the default configuration with environment overrides
// applied.
func FromEnv() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Storage configuration
	if v := os.Getenv("SKILLHUB_DATABASE"); v != "" {
		if v == ":memory:" {
			c.Storage.InMemory = true
		} else {
			c.Storage.DatabasePath = v
		}
	}

	// Session configuration
	if v := os.Getenv("SKILLHUB_USER"); v != "" {
		c.Session.User = v
	}

	// Output configuration
	if v := os.Getenv("SKILLHUB_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("SKILLHUB_COLOR"); v != "" {
		c.Output.Color = v
	}

	// Dashboard configuration
	if v := os.Getenv("SKILLHUB_DASHBOARD_REFRESH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Dashboard.RefreshInterval = d
		}
	}
	if v := os.Getenv("SKILLHUB_DASHBOARD_RECENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Dashboard.MaxRecent = n
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}
