package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-player-compare/internal/domain/players"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/providers"
)

// Config controls how the stats.nba.com client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	// DirectorySeason is the season parameter for the all-players listing.
	// With IsOnlyCurrentSeason=0 the listing still covers every historical player.
	DirectorySeason string
	// PerMode selects Totals, PerGame, Per36... for career rows.
	PerMode string
}

// Client fetches the player directory and career rows from stats.nba.com.
type Client struct {
	baseURL         string
	httpClient      httpDoer
	directorySeason string
	perMode         string
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		httpClient:      resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		directorySeason: orDefault(cfg.DirectorySeason, defaultDirectorySeason),
		perMode:         orDefault(cfg.PerMode, defaultPerMode),
	}
}

var _ providers.StatsProvider = (*Client)(nil)

// FetchPlayers retrieves every player, current and historical, in upstream order.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	q := url.Values{}
	q.Set("LeagueID", leagueIDNBA)
	q.Set("Season", c.directorySeason)
	q.Set("IsOnlyCurrentSeason", "0")

	payload, err := c.get(ctx, directoryEndpoint, q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.find(directoryResultSet)
	if !ok {
		if len(payload.ResultSets) == 0 {
			return nil, fmt.Errorf("%s: directory response has no result sets", providerName)
		}
		set = payload.ResultSets[0]
	}
	return mapPlayers(set)
}

// FetchCareer retrieves the regular-season rows for a player.
func (c *Client) FetchCareer(ctx context.Context, playerID int) (seasons.Career, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("PerMode", c.perMode)
	q.Set("LeagueID", leagueIDNBA)

	payload, err := c.get(ctx, careerEndpoint, q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.find(careerResultSet)
	if !ok {
		return nil, fmt.Errorf("%s: career response missing %s", providerName, careerResultSet)
	}
	return mapCareer(set)
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) (statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return statsResponse{}, err
	}
	req.URL.RawQuery = q.Encode()
	setStatsHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, fmt.Errorf("%s: %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statsResponse{}, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response from %s: %s", endpoint, strings.TrimSpace(string(body))),
		}
	}

	var payload statsResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return statsResponse{}, fmt.Errorf("%s: decode %s: %w", providerName, endpoint, err)
	}
	return payload, nil
}
