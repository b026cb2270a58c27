package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-player-compare/internal/app/compare"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
)

const (
	msgNoData         = "No data provided"
	msgNamesRequired  = "Both player names are required"
	msgSeasonRequired = "Season year is required"
	msgSeasonInvalid  = "Season must be a valid year"
	tieLabel          = "Tie"
)

var msgSeasonRange = fmt.Sprintf("Season must be between %d and %d", seasons.MinYear, seasons.MaxYear)

type compareInput struct {
	Player1 string `validate:"required"`
	Player2 string `validate:"required"`
	Season  int    `validate:"season"`
}

type playerPayload struct {
	Name  string      `json:"name"`
	Stats seasons.Row `json:"stats"`
}

type comparisonPayload struct {
	PointsLeader       string `json:"points_leader"`
	ReboundsLeader     string `json:"rebounds_leader"`
	AssistsLeader      string `json:"assists_leader"`
	FieldGoalPctLeader string `json:"fg_pct_leader"`
}

type compareResponse struct {
	Success    bool              `json:"success"`
	Player1    playerPayload     `json:"player1"`
	Player2    playerPayload     `json:"player2"`
	Comparison comparisonPayload `json:"comparison"`
}

// Compare looks up two players for one season and reports the leader of each category.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	in, msg := h.parseCompare(r)
	if msg != "" {
		h.recorder.RecordComparison(metrics.OutcomeInvalid)
		logging.Info(logger, "compare rejected", "reason", msg)
		writeFailure(w, r, http.StatusBadRequest, msg, h.logger)
		return
	}

	var (
		first, second     compare.Lookup
		firstOK, secondOK bool
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		first, firstOK, err = h.lookup.GetPlayerData(ctx, in.Player1, in.Season)
		return err
	})
	g.Go(func() error {
		var err error
		second, secondOK, err = h.lookup.GetPlayerData(ctx, in.Player2, in.Season)
		return err
	})
	if err := g.Wait(); err != nil {
		h.recorder.RecordComparison(metrics.OutcomeError)
		logging.Error(logger, "compare failed", err, logging.FieldSeason, in.Season)
		writeFailure(w, r, http.StatusInternalServerError, "An error occurred: "+err.Error(), h.logger)
		return
	}

	if !firstOK || !secondOK {
		h.recorder.RecordComparison(metrics.OutcomeNotFound)
		writeFailure(w, r, http.StatusNotFound, notFoundMessage(first.Name, second.Name, firstOK, secondOK, in.Season), h.logger)
		return
	}

	result := compare.Compare(first.Row, second.Row)
	h.recorder.RecordComparison(metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, compareResponse{
		Success: true,
		Player1: playerPayload{Name: first.Name, Stats: first.Row},
		Player2: playerPayload{Name: second.Name, Stats: second.Row},
		Comparison: comparisonPayload{
			PointsLeader:       leaderName(result.Points, first.Name, second.Name),
			ReboundsLeader:     leaderName(result.Rebounds, first.Name, second.Name),
			AssistsLeader:      leaderName(result.Assists, first.Name, second.Name),
			FieldGoalPctLeader: leaderName(result.FieldGoalPct, first.Name, second.Name),
		},
	}, h.logger)
}

// parseCompare returns the validated input, or the client-facing message describing the
// first problem found.
func (h *Handler) parseCompare(r *http.Request) (compareInput, string) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
		return compareInput{}, msgNoData
	}

	in := compareInput{
		Player1: rawString(fields["player1"]),
		Player2: rawString(fields["player2"]),
	}
	if err := h.validate.StructPartial(in, "Player1", "Player2"); err != nil {
		return in, msgNamesRequired
	}

	year, msg := parseSeason(fields["season"])
	if msg != "" {
		return in, msg
	}
	in.Season = year
	if err := h.validate.StructPartial(in, "Season"); err != nil {
		return in, msgSeasonRange
	}
	return in, ""
}

// parseSeason accepts a JSON number or numeric string. Absent, null, zero, false and empty
// values count as missing.
func parseSeason(raw json.RawMessage) (int, string) {
	if len(raw) == 0 {
		return 0, msgSeasonRequired
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, msgSeasonInvalid
	}

	switch val := v.(type) {
	case nil:
		return 0, msgSeasonRequired
	case bool:
		if !val {
			return 0, msgSeasonRequired
		}
		return 1, ""
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, msgSeasonInvalid
		}
		if f == 0 {
			return 0, msgSeasonRequired
		}
		return int(f), ""
	case string:
		if val == "" {
			return 0, msgSeasonRequired
		}
		year, err := seasons.ParseYear(val)
		if err != nil {
			return 0, msgSeasonInvalid
		}
		return year, ""
	case []any:
		if len(val) == 0 {
			return 0, msgSeasonRequired
		}
	case map[string]any:
		if len(val) == 0 {
			return 0, msgSeasonRequired
		}
	}
	return 0, msgSeasonInvalid
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func notFoundMessage(name1, name2 string, ok1, ok2 bool, year int) string {
	switch {
	case !ok1 && !ok2:
		return fmt.Sprintf("Could not find data for either '%s' or '%s' for the %d season", name1, name2, year)
	case !ok1:
		return fmt.Sprintf("Could not find '%s' or they did not play in the %d season", name1, year)
	default:
		return fmt.Sprintf("Could not find '%s' or they did not play in the %d season", name2, year)
	}
}

func leaderName(l compare.Leader, name1, name2 string) string {
	switch l {
	case compare.Player1:
		return name1
	case compare.Player2:
		return name2
	default:
		return tieLabel
	}
}
