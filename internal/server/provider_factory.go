package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-player-compare/internal/config"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
	"github.com/preston-bernstein/nba-player-compare/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base, name := selectProvider(cfg, f.logger)
	return f.wrap(base, name)
}

func (f providerFactory) wrap(base providers.StatsProvider, name string) providers.StatsProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

// NewProvider builds the configured, instrumented provider for callers outside the HTTP server.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.StatsProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}
