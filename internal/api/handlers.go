package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jgengo/intra-events-telegram/internal/version"
)

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"version": version.Version,
		"commit":  version.Commit,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire; a second response cannot be
	// issued, so an encode failure can only be logged.
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response body", "error", err)
	}
}
