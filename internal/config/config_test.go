package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin by default, got %v", cfg.CORSOrigins)
	}
	if cfg.NBAStats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default stats base url %s, got %s", defaultStatsBaseURL, cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default stats timeout %s, got %s", defaultStatsTimeout, cfg.NBAStats.Timeout)
	}
	if cfg.NBAStats.PerMode != "Totals" {
		t.Fatalf("expected Totals per mode, got %s", cfg.NBAStats.PerMode)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envCORSOrigins, "http://localhost:3000, http://localhost:5173,")
	t.Setenv(envStatsBaseURL, "http://example.com/stats")
	t.Setenv(envStatsTimeout, "5s")
	t.Setenv(envStatsDirSeason, "2019-20")
	t.Setenv(envStatsPerMode, "PerGame")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.NBAStats.BaseURL != "http://example.com/stats" {
		t.Fatalf("expected stats base url override, got %s", cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.NBAStats.Timeout)
	}
	if cfg.NBAStats.DirectorySeason != "2019-20" || cfg.NBAStats.PerMode != "PerGame" {
		t.Fatalf("unexpected stats overrides %+v", cfg.NBAStats)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envStatsTimeout, "not-a-duration")

	cfg := Load()
	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.NBAStats.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envStatsTimeout, "0s")

	cfg := Load()
	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.NBAStats.Timeout)
	}
}
