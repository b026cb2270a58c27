package nbastats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
)

func mapPlayers(set resultSet) ([]players.Player, error) {
	idCol := set.column(headerPersonID)
	nameCol := set.column(headerFirstLast)
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("%s: directory missing %s/%s columns", providerName, headerPersonID, headerFirstLast)
	}

	out := make([]players.Player, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		id, ok := intAt(raw, idCol)
		if !ok {
			continue
		}
		name, ok := stringAt(raw, nameCol)
		if !ok || name == "" {
			continue
		}
		out = append(out, players.Player{ID: id, FullName: name})
	}
	return out, nil
}

func mapCareer(set resultSet) (seasons.Career, error) {
	if set.column(seasons.ColumnSeasonID) < 0 {
		return nil, fmt.Errorf("%s: career missing %s column", providerName, seasons.ColumnSeasonID)
	}
	career := make(seasons.Career, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		career = append(career, seasons.NewRow(set.Headers, raw))
	}
	return career, nil
}

func intAt(row []any, idx int) (int, bool) {
	if idx >= len(row) {
		return 0, false
	}
	var f float64
	switch v := row[idx].(type) {
	case float64:
		f = v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func stringAt(row []any, idx int) (string, bool) {
	if idx >= len(row) {
		return "", false
	}
	s, ok := row[idx].(string)
	return strings.TrimSpace(s), ok
}
