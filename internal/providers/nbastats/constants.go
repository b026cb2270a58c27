package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL         = "https://stats.nba.com/stats"
	defaultHTTPTimeout     = 30 * time.Second
	defaultDirectorySeason = "2024-25"
	defaultPerMode         = "Totals"
	leagueIDNBA            = "00"

	directoryEndpoint = "/commonallplayers"
	careerEndpoint    = "/playercareerstats"

	directoryResultSet = "CommonAllPlayers"
	careerResultSet    = "SeasonTotalsRegularSeason"

	headerPersonID  = "PERSON_ID"
	headerFirstLast = "DISPLAY_FIRST_LAST"

	maxErrorBody = 512
)
