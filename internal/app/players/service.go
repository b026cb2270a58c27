package players

import (
	"context"
	"strings"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
)

// Directory lists every known player in upstream order.
type Directory interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// Service resolves names against the upstream directory. It holds no state between calls;
// every lookup fetches the directory afresh.
type Service struct {
	directory Directory
}

// NewService constructs a Service with the provided Directory.
func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// Resolve returns the first directory entry whose full name equals name, ignoring case.
// Without an exact match it falls back to the first entry whose full name contains name,
// so "Kelly Oubre" finds "Kelly Oubre Jr.". Upstream order breaks ties in both passes.
func (s *Service) Resolve(ctx context.Context, name string) (players.Player, bool, error) {
	all, err := s.directory.FetchPlayers(ctx)
	if err != nil {
		return players.Player{}, false, err
	}
	for _, p := range all {
		if strings.EqualFold(p.FullName, name) {
			return p, true, nil
		}
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return players.Player{}, false, nil
	}
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.FullName), needle) {
			return p, true, nil
		}
	}
	return players.Player{}, false, nil
}

// Search returns up to limit full names containing query, ignoring case, in upstream order.
// A blank query returns an empty list without touching the upstream.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || limit <= 0 {
		return []string{}, nil
	}
	all, err := s.directory.FetchPlayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, limit)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.FullName), needle) {
			names = append(names, p.FullName)
			if len(names) == limit {
				break
			}
		}
	}
	return names, nil
}
