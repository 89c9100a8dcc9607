// Package server provides the HTTP server for the Mushti game scoreboard.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mushti/internal/detector"
	"github.com/ayusman/mushti/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// StateSource supplies the latest detection results and session snapshot.
type StateSource interface {
	LatestDetection() ([]detector.HandLandmarks, game.Observation)
	Snapshot() game.Snapshot
}

// StateHandler broadcasts real-time game state via WebSocket: hand
// landmarks, the current classification, score, and status line.
type StateHandler struct {
	source  StateSource
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewStateHandler creates a new StateHandler with the given state source.
func NewStateHandler(source StateSource) *StateHandler {
	h := &StateHandler{
		source:  source,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// stateMessage is the wire format of one broadcast frame.
type stateMessage struct {
	Hands       []detector.HandLandmarks `json:"hands"`
	Observation game.Observation         `json:"observation"`
	Score       game.Score               `json:"score"`
	Status      string                   `json:"status"`
	Locked      bool                     `json:"locked"`
	LastRound   *game.Round              `json:"last_round,omitempty"`
	Timestamp   int64                    `json:"timestamp"`
}

// broadcast sends game state to all connected clients.
func (h *StateHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		hands, obs := h.source.LatestDetection()
		snap := h.source.Snapshot()

		msg, err := json.Marshal(stateMessage{
			Hands:       hands,
			Observation: obs,
			Score:       snap.Score,
			Status:      snap.Status,
			Locked:      snap.Locked,
			LastRound:   snap.LastRound,
			Timestamp:   time.Now().UnixMilli(),
		})
		if err != nil {
			continue
		}

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
