package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-player-compare/internal/http/middleware"
	"github.com/preston-bernstein/nba-player-compare/internal/http/requestutil"
	"github.com/preston-bernstein/nba-player-compare/internal/logging"
)

type errorBody struct {
	Success   *bool  `json:"success,omitempty"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message, RequestID: requestID(r)}, logger)
}

// writeFailure is writeError with the success flag the compare endpoint carries.
func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	success := false
	writeJSON(w, status, errorBody{Success: &success, Error: message, RequestID: requestID(r)}, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
