// Package api provides HTTP API handlers for the Mushti round history.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mushti/internal/store"
)

// defaultListLimit caps an unqualified history request.
const defaultListLimit = 50

// RoundsHandler handles HTTP requests for the round history.
type RoundsHandler struct {
	store *store.Store
}

// NewRoundsHandler creates a new RoundsHandler with the given store.
func NewRoundsHandler(s *store.Store) *RoundsHandler {
	return &RoundsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// the appropriate method.
func (h *RoundsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/rounds or /api/rounds/stats
	path := strings.TrimPrefix(r.URL.Path, "/api/rounds")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "stats":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.stats(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// Request and response types

type roundResponse struct {
	ID           string `json:"id"`
	PlayerMove   string `json:"player_move"`
	ComputerMove string `json:"computer_move"`
	Verdict      string `json:"verdict"`
	CreatedAt    string `json:"created_at"`
}

type listRoundsResponse struct {
	Rounds []roundResponse `json:"rounds"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Player   int `json:"player"`
	Computer int `json:"computer"`
	Ties     int `json:"ties"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Round to a roundResponse.
func toResponse(round *store.Round) roundResponse {
	return roundResponse{
		ID:           round.ID,
		PlayerMove:   round.PlayerMove,
		ComputerMove: round.ComputerMove,
		Verdict:      round.Verdict,
		CreatedAt:    round.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/rounds and returns recent rounds, newest first.
// The optional limit query parameter caps the result.
func (h *RoundsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	rounds, err := h.store.Rounds().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rounds")
		return
	}

	response := listRoundsResponse{
		Rounds: make([]roundResponse, 0, len(rounds)),
	}
	for _, round := range rounds {
		response.Rounds = append(response.Rounds, toResponse(round))
	}

	writeJSON(w, http.StatusOK, response)
}

// stats handles GET /api/rounds/stats and returns verdict totals across
// the whole history.
func (h *RoundsHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Rounds().Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Total:    stats.Total,
		Player:   stats.Player,
		Computer: stats.Computer,
		Ties:     stats.Ties,
	})
}

// clear handles DELETE /api/rounds and wipes the history.
func (h *RoundsHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Rounds().Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear rounds")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
