package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
)

const (
	callDirectory = "directory"
	callCareer    = "career"
)

// instrumentedProvider records metrics and logs for every upstream call.
// Each call is attempted exactly once; failures go straight back to the caller.
type instrumentedProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps the given provider with call metrics and failure logging.
func NewInstrumentedProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) StatsProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.inner.FetchPlayers(ctx)
	p.observe(ctx, callDirectory, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

func (p *instrumentedProvider) FetchCareer(ctx context.Context, playerID int) (seasons.Career, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	career, err := p.inner.FetchCareer(ctx, playerID)
	p.observe(ctx, callCareer, start, err, slog.Int(logging.FieldPlayerID, playerID), slog.Int(logging.FieldCount, len(career)))
	return career, err
}

// Provider exposes the wrapped provider.
func (p *instrumentedProvider) Provider() StatsProvider {
	return p.inner
}

// Unwrap returns the provider beneath any instrumentation layers.
func Unwrap(p StatsProvider) StatsProvider {
	for {
		w, ok := p.(interface{ Provider() StatsProvider })
		if !ok {
			return p
		}
		p = w.Provider()
	}
}

func (p *instrumentedProvider) observe(ctx context.Context, call string, start time.Time, err error, attrs ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, call, elapsed, err)

	attrs = append(attrs, slog.String("call", call), slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	if err != nil {
		if up, ok := AsUpstreamError(err); ok {
			attrs = append(attrs, slog.Int(logging.FieldStatusCode, up.StatusCode))
		}
		attrs = append(attrs, "error", err)
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider call failed", attrs...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider call complete", attrs...)
}
