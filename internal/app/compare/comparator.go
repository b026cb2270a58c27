package compare

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

// Leader names which side of a comparison won a category.
type Leader string

const (
	Player1 Leader = "player1"
	Player2 Leader = "player2"
	Tie     Leader = "tie"
)

// Swap returns the leader as seen with the players' order reversed.
func (l Leader) Swap() Leader {
	switch l {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return l
	}
}

// Category is one compared statistic.
type Category struct {
	// Key is the stable identifier used on the wire, e.g. "points".
	Key    string
	Column string
	Leader Leader
}

// Result holds the leader of each compared statistic.
type Result struct {
	Points       Leader
	Rebounds     Leader
	Assists      Leader
	FieldGoalPct Leader
}

// Categories returns the compared statistics in display order.
func (r Result) Categories() []Category {
	return []Category{
		{Key: "points", Column: seasons.ColumnPoints, Leader: r.Points},
		{Key: "rebounds", Column: seasons.ColumnRebounds, Leader: r.Rebounds},
		{Key: "assists", Column: seasons.ColumnAssists, Leader: r.Assists},
		{Key: "fg_pct", Column: seasons.ColumnFieldGoalPct, Leader: r.FieldGoalPct},
	}
}

// Compare decides the leader of each category. Missing values count as 0 and only
// exact equality is a tie.
func Compare(a, b seasons.Row) Result {
	return Result{
		Points:       leader(a.Stat(seasons.ColumnPoints), b.Stat(seasons.ColumnPoints)),
		Rebounds:     leader(a.Stat(seasons.ColumnRebounds), b.Stat(seasons.ColumnRebounds)),
		Assists:      leader(a.Stat(seasons.ColumnAssists), b.Stat(seasons.ColumnAssists)),
		FieldGoalPct: leader(a.Stat(seasons.ColumnFieldGoalPct), b.Stat(seasons.ColumnFieldGoalPct)),
	}
}

func leader(a, b float64) Leader {
	switch {
	case a > b:
		return Player1
	case b > a:
		return Player2
	default:
		return Tie
	}
}

// PointsSummary is the one-line points verdict printed after a CLI comparison.
func PointsSummary(name1, name2 string, a, b seasons.Row) string {
	p1 := a.Stat(seasons.ColumnPoints)
	p2 := b.Stat(seasons.ColumnPoints)
	switch leader(p1, p2) {
	case Player1:
		return fmt.Sprintf("%s had more points in the season with %s points.", name1, formatPoints(p1))
	case Player2:
		return fmt.Sprintf("%s had more points in the season with %s points.", name2, formatPoints(p2))
	default:
		return fmt.Sprintf("%s and %s had the same number of points in the season with %s points each.", name1, name2, formatPoints(p1))
	}
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
