package handlers

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/nba-player-compare/internal/app/compare"
	"github.com/preston-bernstein/nba-player-compare/internal/domain/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
)

// SearchLimit caps the number of names returned by the search endpoint.
const SearchLimit = 10

//go:embed static/index.html
var indexHTML []byte

// PlayerSearcher finds player names by substring.
type PlayerSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// PlayerLookup loads one player's season.
type PlayerLookup interface {
	GetPlayerData(ctx context.Context, name string, year int) (compare.Lookup, bool, error)
}

// Handler wires HTTP routes to the player services.
type Handler struct {
	search   PlayerSearcher
	lookup   PlayerLookup
	recorder *metrics.Recorder
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler constructs a Handler. recorder and logger may be nil.
func NewHandler(search PlayerSearcher, lookup PlayerLookup, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		search:   search,
		lookup:   lookup,
		recorder: recorder,
		logger:   logger,
		validate: newValidator(),
	}
}

// Index serves the embedded front end.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		loggerFromContext(r, h.logger).Error("failed to write index", "err", err)
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Search returns up to SearchLimit player names containing the query parameter.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	names, err := h.search.Search(r.Context(), query, SearchLimit)
	if err != nil {
		loggerFromContext(r, h.logger).Error("player search failed", "err", err, "query", query)
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, names, h.logger)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegisterValidation(v, "season", func(fl validator.FieldLevel) bool {
		return seasons.ValidateYear(int(fl.Field().Int())) == nil
	})
	return v
}

func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// NotFound is the JSON fallback for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON fallback for known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
