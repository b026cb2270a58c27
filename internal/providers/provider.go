package providers

import (
	"context"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

// DirectoryProvider lists every player the upstream knows about, in upstream order.
type DirectoryProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// CareerProvider fetches a player's regular-season rows, one per season (or per team stint).
type CareerProvider interface {
	FetchCareer(ctx context.Context, playerID int) (seasons.Career, error)
}

// StatsProvider combines all provider capabilities.
type StatsProvider interface {
	DirectoryProvider
	CareerProvider
}
