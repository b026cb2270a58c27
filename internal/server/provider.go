package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-player-compare/internal/config"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
	"github.com/preston-bernstein/nba-player-compare/internal/providers"
	"github.com/preston-bernstein/nba-player-compare/internal/providers/fixture"
	"github.com/preston-bernstein/nba-player-compare/internal/providers/nbastats"
)

const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

// selectProvider returns the configured upstream and the name it reports metrics under.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.StatsProvider, string) {
	switch normalizeProviderName(cfg.Provider, nil) {
	case providerNBAStats:
		return nbastats.NewClient(nbastats.Config{
			BaseURL:         cfg.NBAStats.BaseURL,
			Timeout:         cfg.NBAStats.Timeout,
			DirectorySeason: cfg.NBAStats.DirectorySeason,
			PerMode:         cfg.NBAStats.PerMode,
		}), providerNBAStats
	case providerFixture:
		return fixture.New(), providerFixture
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(), providerFixture
	}
}
