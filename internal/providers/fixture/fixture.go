package fixture

import (
	"context"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

// Columns mirrors a trimmed stats.nba.com SeasonTotalsRegularSeason header row.
var Columns = []string{
	"PLAYER_ID", "SEASON_ID", "LEAGUE_ID", "TEAM_ID", "TEAM_ABBREVIATION",
	"PLAYER_AGE", "GP", "FG_PCT", "REB", "AST", "PTS",
}

const (
	teamCLE = 1610612739
	teamLAL = 1610612747
	teamGSW = 1610612744
	teamBKN = 1610612751
)

// Provider returns a static directory and career rows useful for local testing and bootstrapping.
type Provider struct {
	directory []players.Player
	careers   map[int][][]any
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		directory: []players.Player{
			{ID: 2544, FullName: "LeBron James"},
			{ID: 201142, FullName: "Kevin Durant"},
			{ID: 201939, FullName: "Stephen Curry"},
			// Two distinct players share this name; lookups take the first.
			{ID: 200766, FullName: "Marcus Williams"},
			{ID: 201173, FullName: "Marcus Williams"},
		},
		careers: map[int][][]any{
			2544: {
				row(2544, "2003-04", teamCLE, "CLE", 19, 79, 0.417, 432, 465, 1654),
				row(2544, "2018-19", teamLAL, "LAL", 34, 55, 0.510, 465, 454, 1505),
				row(2544, "2019-20", teamLAL, "LAL", 35, 67, 0.493, 525, 684, 1698),
				row(2544, "2020-21", teamLAL, "LAL", 36, 45, 0.513, 346, 350, 1126),
			},
			// Durant missed all of 2019-20.
			201142: {
				row(201142, "2018-19", teamGSW, "GSW", 30, 78, 0.521, 497, 457, 2027),
				row(201142, "2020-21", teamBKN, "BKN", 32, 35, 0.537, 250, 196, 944),
			},
			201939: {
				row(201939, "2019-20", teamGSW, "GSW", 32, 5, 0.402, 26, 33, 104),
				row(201939, "2020-21", teamGSW, "GSW", 33, 63, 0.482, 346, 365, 2015),
			},
			200766: {
				row(200766, "2006-07", teamBKN, "NJN", 21, 79, 0.401, 152, 262, 536),
			},
			201173: {
				row(201173, "2008-09", 1610612746, "LAC", 22, 3, 0.333, 2, 0, 4),
			},
		},
	}
}

// FetchPlayers returns the fixture directory in a stable order.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]players.Player, len(p.directory))
	copy(out, p.directory)
	return out, nil
}

// FetchCareer returns the fixture rows for the player; unknown ids yield an empty career.
func (p *Provider) FetchCareer(ctx context.Context, playerID int) (seasons.Career, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := p.careers[playerID]
	career := make(seasons.Career, 0, len(rows))
	for _, values := range rows {
		career = append(career, seasons.NewRow(Columns, values))
	}
	return career, nil
}

func row(playerID int, season string, teamID int, team string, age, gp, fgPct, reb, ast, pts float64) []any {
	return []any{float64(playerID), season, "00", float64(teamID), team, age, gp, fgPct, reb, ast, pts}
}
