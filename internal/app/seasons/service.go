package seasons

import (
	"context"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

// Careers fetches a player's career rows.
type Careers interface {
	FetchCareer(ctx context.Context, playerID int) (seasons.Career, error)
}

// Service selects single seasons out of freshly fetched careers.
type Service struct {
	careers Careers
}

// NewService constructs a Service with the provided Careers source.
func NewService(careers Careers) *Service {
	return &Service{careers: careers}
}

// Fetch returns the player's row for the season ending in year.
// ok is false when the player has no row for that season.
func (s *Service) Fetch(ctx context.Context, playerID, year int) (seasons.Row, bool, error) {
	career, err := s.careers.FetchCareer(ctx, playerID)
	if err != nil {
		return seasons.Row{}, false, err
	}
	row, ok := career.Season(seasons.Label(year))
	return row, ok, nil
}
