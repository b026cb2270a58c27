package compare

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
)

// Resolver maps a display name to a directory entry.
type Resolver interface {
	Resolve(ctx context.Context, name string) (players.Player, bool, error)
}

// SeasonFetcher loads a single season row for a player.
type SeasonFetcher interface {
	Fetch(ctx context.Context, playerID, year int) (seasons.Row, bool, error)
}

// Lookup is the outcome of a successful player data lookup.
type Lookup struct {
	// Name is the normalized display name used for resolution.
	Name   string
	Player players.Player
	Row    seasons.Row
}

// Pipeline chains name normalization, player resolution and season fetching.
type Pipeline struct {
	resolver Resolver
	fetcher  SeasonFetcher
	logger   *slog.Logger
}

// NewPipeline wires a Pipeline. logger may be nil.
func NewPipeline(resolver Resolver, fetcher SeasonFetcher, logger *slog.Logger) *Pipeline {
	return &Pipeline{resolver: resolver, fetcher: fetcher, logger: logger}
}

// GetPlayerData returns the season row for name in the season ending in year.
// ok is false when the name is unknown or the player has no row for that season;
// an unknown name never triggers a career fetch.
func (p *Pipeline) GetPlayerData(ctx context.Context, name string, year int) (Lookup, bool, error) {
	normalized := players.NormalizeName(name)
	lookup := Lookup{Name: normalized}
	logger := logging.FromContext(ctx, p.logger)

	player, ok, err := p.resolver.Resolve(ctx, normalized)
	if err != nil {
		return lookup, false, err
	}
	if !ok {
		logging.Info(logger, "player not found", logging.FieldPlayer, normalized)
		return lookup, false, nil
	}
	lookup.Player = player

	row, ok, err := p.fetcher.Fetch(ctx, player.ID, year)
	if err != nil {
		return lookup, false, err
	}
	if !ok {
		logging.Info(logger, "season not found",
			logging.FieldPlayer, normalized,
			logging.FieldPlayerID, player.ID,
			logging.FieldSeason, seasons.Label(year),
		)
		return lookup, false, nil
	}
	lookup.Row = row
	return lookup, true, nil
}
