package testutil

import (
	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/teststubs"
)

// SampleColumns is the column layout used by SampleRow.
var SampleColumns = []string{"PLAYER_ID", "SEASON_ID", "TEAM_ABBREVIATION", "PLAYER_AGE", "FG_PCT", "REB", "AST", "PTS"}

// SampleRow builds a season row with the given comparison stats.
func SampleRow(playerID int, season string, age, pts, reb, ast, fgPct float64) seasons.Row {
	return seasons.NewRow(SampleColumns, []any{float64(playerID), season, "TST", age, fgPct, reb, ast, pts})
}

// SampleProvider returns a stub provider with LeBron James and Kevin Durant both playing 2019-20,
// plus an unrelated player, so two-player comparisons succeed for season 2020.
func SampleProvider() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Players: []players.Player{
			{ID: 2544, FullName: "LeBron James"},
			{ID: 201142, FullName: "Kevin Durant"},
			{ID: 1, FullName: "Rookie Only"},
		},
		Careers: map[int]seasons.Career{
			2544: {
				SampleRow(2544, "2018-19", 34, 1505, 465, 454, 0.510),
				SampleRow(2544, "2019-20", 35, 1698, 525, 684, 0.493),
			},
			201142: {
				SampleRow(201142, "2019-20", 31, 1800, 400, 300, 0.530),
			},
			1: {
				SampleRow(1, "2024-25", 20, 10, 2, 1, 0.5),
			},
		},
	}
}
