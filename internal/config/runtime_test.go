package config

import (
	"os"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Test storage defaults
	if cfg.Storage.DatabasePath != "" {
		t.Errorf("expected Storage.DatabasePath = \"\", got %q", cfg.Storage.DatabasePath)
	}
	if cfg.Storage.InMemory {
		t.Error("expected Storage.InMemory = false")
	}

	// Test output defaults
	if cfg.Output.Format != "cli" {
		t.Errorf("expected Output.Format = cli, got %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected Output.Color = auto, got %q", cfg.Output.Color)
	}

	// Test dashboard defaults
	if cfg.Dashboard.RefreshInterval != 2*time.Second {
		t.Errorf("expected Dashboard.RefreshInterval = 2s, got %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxRecent != 5 {
		t.Errorf("expected Dashboard.MaxRecent = 5, got %d", cfg.Dashboard.MaxRecent)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	os.Setenv("SKILLHUB_DATABASE", ":memory:")
	os.Setenv("SKILLHUB_USER", "alice")
	os.Setenv("SKILLHUB_FORMAT", "json")
	os.Setenv("SKILLHUB_DASHBOARD_REFRESH", "10s")
	defer func() {
		os.Unsetenv("SKILLHUB_DATABASE")
		os.Unsetenv("SKILLHUB_USER")
		os.Unsetenv("SKILLHUB_FORMAT")
		os.Unsetenv("SKILLHUB_DASHBOARD_REFRESH")
	}()

	cfg := FromEnv()

	if !cfg.Storage.InMemory {
		t.Error("expected Storage.InMemory = true for :memory:")
	}
	if cfg.Session.User != "alice" {
		t.Errorf("expected Session.User = alice, got %q", cfg.Session.User)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected Output.Format = json, got %q", cfg.Output.Format)
	}
	if cfg.Dashboard.RefreshInterval != 10*time.Second {
		t.Errorf("expected Dashboard.RefreshInterval = 10s, got %v", cfg.Dashboard.RefreshInterval)
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	os.Setenv("SKILLHUB_DASHBOARD_REFRESH", "not-a-duration")
	os.Setenv("SKILLHUB_DASHBOARD_RECENT", "-3")
	defer func() {
		os.Unsetenv("SKILLHUB_DASHBOARD_REFRESH")
		os.Unsetenv("SKILLHUB_DASHBOARD_RECENT")
	}()

	cfg := FromEnv()

	if cfg.Dashboard.RefreshInterval != 2*time.Second {
		t.Errorf("expected default RefreshInterval kept, got %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxRecent != 5 {
		t.Errorf("expected default MaxRecent kept, got %d", cfg.Dashboard.MaxRecent)
	}
}
