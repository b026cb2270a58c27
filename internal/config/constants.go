package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envStatsBaseURL    = "NBA_STATS_BASE_URL"
	envStatsTimeout    = "NBA_STATS_TIMEOUT"
	envStatsDirSeason  = "NBA_STATS_DIRECTORY_SEASON"
	envStatsPerMode    = "NBA_STATS_PER_MODE"
	defaultPort        = "5000"
	defaultProvider    = "nbastats"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-player-compare"

	defaultStatsBaseURL   = "https://stats.nba.com/stats"
	defaultStatsDirSeason = "2024-25"
	// Matches the upstream endpoint's own default; "PerGame" yields averages.
	defaultStatsPerMode = "Totals"
	// stats.nba.com is slow to answer the full directory listing.
	defaultStatsTimeout = 30 * time.Second
)

var defaultCORSOrigins = []string{"*"}
