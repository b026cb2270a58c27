package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

// StubProvider is a test double for providers.StatsProvider.
// Err applies to both calls unless the call-specific error is set.
type StubProvider struct {
	Players      []players.Player
	Careers      map[int]seasons.Career
	Err          error
	DirectoryErr error
	CareerErr    error

	DirectoryCalls atomic.Int32
	CareerCalls    atomic.Int32
	LastPlayerID   atomic.Int64
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.DirectoryCalls.Add(1)
	if err := firstErr(s.DirectoryErr, s.Err); err != nil {
		return nil, err
	}
	return s.Players, nil
}

// FetchCareer returns the configured career for the player while tracking calls.
func (s *StubProvider) FetchCareer(ctx context.Context, playerID int) (seasons.Career, error) {
	_ = ctx
	s.CareerCalls.Add(1)
	s.LastPlayerID.Store(int64(playerID))
	if err := firstErr(s.CareerErr, s.Err); err != nil {
		return nil, err
	}
	return s.Careers[playerID], nil
}

// Calls returns the total number of upstream calls made.
func (s *StubProvider) Calls() int {
	return int(s.DirectoryCalls.Load() + s.CareerCalls.Load())
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
