package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port        string
	Provider    string
	CORSOrigins []string
	NBAStats    NBAStatsConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		NBAStats:    loadNBAStats(),
		Metrics:     loadMetrics(),
	}
}
