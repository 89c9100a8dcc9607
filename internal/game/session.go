package game

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Round is one resolved comparison of player move vs. computer move.
type Round struct {
	ID       string  `json:"id"`
	Player   Move    `json:"player"`
	Computer Move    `json:"computer"`
	Verdict  Verdict `json:"verdict"`
	Message  string  `json:"message"`
}

// Recorder persists resolved rounds. Recording is best-effort: a recorder
// error never blocks round resolution.
type Recorder interface {
	RecordRound(r Round) error
}

// Snapshot is a read-only view of the session for presentation.
type Snapshot struct {
	Score     Score  `json:"score"`
	Status    string `json:"status"`
	Locked    bool   `json:"locked"`
	LastRound *Round `json:"last_round,omitempty"`
}

// SessionConfig holds configuration options for a game session.
type SessionConfig struct {
	// CommitThreshold is the consecutive-observation count to commit a move.
	CommitThreshold int
	// Cooldown is the quiet period after each committed round.
	Cooldown time.Duration
	// Recorder receives resolved rounds. May be nil.
	Recorder Recorder
}

// Session owns one game's resolver and debouncer. All observations and
// resets go through the session, which serializes access so the tick loop,
// the HTTP handlers, and the tray can share it.
type Session struct {
	mu        sync.Mutex
	resolver  *Resolver
	debouncer *Debouncer
	recorder  Recorder
	status    string
	lastRound *Round
}

// NewSession creates a Session with the given configuration.
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		resolver:  NewResolver(),
		debouncer: NewDebouncer(cfg.CommitThreshold, cfg.Cooldown),
		recorder:  cfg.Recorder,
		status:    "Show a gesture to start!",
	}
}

// Observe feeds one classification into the debouncer. When the debouncer
// commits a move, the session draws a computer move, resolves the round,
// updates the status line, records the round, and returns it.
func (s *Session) Observe(obs Observation) (*Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	move, committed := s.debouncer.Observe(obs)
	if !committed {
		if !s.debouncer.Locked() && !obs.Move.Valid() {
			s.status = "Waiting for a gesture..."
		}
		return nil, false
	}

	computer := s.resolver.ComputerMove()
	outcome := s.resolver.Resolve(move, computer)

	round := &Round{
		ID:       uuid.New().String(),
		Player:   outcome.Player,
		Computer: outcome.Computer,
		Verdict:  outcome.Verdict,
		Message:  outcome.Message(),
	}

	s.lastRound = round
	s.status = fmt.Sprintf("You played %s. I played %s. %s", round.Player, round.Computer, round.Message)

	if s.recorder != nil {
		if err := s.recorder.RecordRound(*round); err != nil {
			log.Printf("Failed to record round %s: %v", round.ID, err)
		}
	}

	return round, true
}

// Reset zeroes the score, returns the debouncer to idle, and cancels any
// pending cool-down.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolver.Reset()
	s.debouncer.Reset()
	s.lastRound = nil
	s.status = "Scores cleared. Show a gesture to play!"
}

// Snapshot returns the current score, status, and lock state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Score:     s.resolver.Score(),
		Status:    s.status,
		Locked:    s.debouncer.Locked(),
		LastRound: s.lastRound,
	}
}

// SetClock replaces the debouncer's time source. Intended for tests.
func (s *Session) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debouncer.SetClock(now)
}

// SetRand replaces the resolver's random source. Intended for tests.
func (s *Session) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolver.SetRand(rng)
}
