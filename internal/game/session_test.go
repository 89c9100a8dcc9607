package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// memoryRecorder captures recorded rounds for assertions.
type memoryRecorder struct {
	rounds []Round
	err    error
}

func (m *memoryRecorder) RecordRound(r Round) error {
	if m.err != nil {
		return m.err
	}
	m.rounds = append(m.rounds, r)
	return nil
}

func feedSession(s *Session, m Move, n int) (rounds []*Round) {
	for i := 0; i < n; i++ {
		if r, ok := s.Observe(Observation{Move: m, Confidence: 1.0}); ok {
			rounds = append(rounds, r)
		}
	}
	return rounds
}

func TestSession_CommitResolvesRound(t *testing.T) {
	rec := &memoryRecorder{}
	s := NewSession(SessionConfig{CommitThreshold: 5, Recorder: rec})
	s.SetRand(rand.New(rand.NewSource(42)))

	rounds := feedSession(s, MoveRock, 5)
	if len(rounds) != 1 {
		t.Fatalf("5 observations at threshold 5 committed %d rounds, want 1", len(rounds))
	}

	round := rounds[0]
	if round.Player != MoveRock {
		t.Errorf("round player = %s, want rock", round.Player)
	}
	if round.ID == "" {
		t.Error("round ID should be set")
	}
	if !round.Computer.Valid() {
		t.Errorf("round computer move %q is not playable", round.Computer)
	}

	snap := s.Snapshot()
	total := snap.Score.Player + snap.Score.Computer + snap.Score.Ties
	if total != 1 {
		t.Errorf("score counters sum to %d after one round, want 1", total)
	}
	if !snap.Locked {
		t.Error("session should be locked right after a round")
	}
	if snap.LastRound == nil || snap.LastRound.ID != round.ID {
		t.Error("snapshot should carry the last round")
	}

	if len(rec.rounds) != 1 || rec.rounds[0].ID != round.ID {
		t.Errorf("recorder saw %d rounds, want the committed one", len(rec.rounds))
	}
}

func TestSession_RecorderErrorDoesNotBlockRound(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	s := NewSession(SessionConfig{CommitThreshold: 3, Recorder: rec})

	rounds := feedSession(s, MoveScissors, 3)
	if len(rounds) != 1 {
		t.Fatalf("committed %d rounds with failing recorder, want 1", len(rounds))
	}

	snap := s.Snapshot()
	if snap.Score.Player+snap.Score.Computer+snap.Score.Ties != 1 {
		t.Error("score should update even when recording fails")
	}
}

func TestSession_UnknownUpdatesStatus(t *testing.T) {
	s := NewSession(SessionConfig{CommitThreshold: 10})

	feedSession(s, MoveRock, 4)
	s.Observe(Observation{Move: MoveUnknown})

	if got := s.Snapshot().Status; got != "Waiting for a gesture..." {
		t.Errorf("status = %q, want waiting prompt", got)
	}
}

func TestSession_Reset(t *testing.T) {
	rec := &memoryRecorder{}
	s := NewSession(SessionConfig{CommitThreshold: 3, Cooldown: time.Hour, Recorder: rec})

	feedSession(s, MovePaper, 3)

	s.Reset()

	snap := s.Snapshot()
	if snap.Score != (Score{}) {
		t.Errorf("score after Reset = %+v, want zeros", snap.Score)
	}
	if snap.Locked {
		t.Error("Reset must cancel the pending cool-down")
	}
	if snap.LastRound != nil {
		t.Error("Reset must clear the last round")
	}

	// Playable immediately despite the hour-long cool-down.
	if rounds := feedSession(s, MovePencil, 3); len(rounds) != 1 {
		t.Errorf("post-reset burst committed %d rounds, want 1", len(rounds))
	}
}

func TestSession_NilRecorder(t *testing.T) {
	s := NewSession(SessionConfig{CommitThreshold: 2})

	if rounds := feedSession(s, MoveRock, 2); len(rounds) != 1 {
		t.Errorf("committed %d rounds without recorder, want 1", len(rounds))
	}
}
