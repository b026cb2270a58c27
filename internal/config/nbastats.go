package config

import "time"

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL         string
	Timeout         time.Duration
	DirectorySeason string
	PerMode         string
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:         envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout:         durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		DirectorySeason: envOrDefault(envStatsDirSeason, defaultStatsDirSeason),
		PerMode:         envOrDefault(envStatsPerMode, defaultStatsPerMode),
	}
}
