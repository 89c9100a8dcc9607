package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mushti/internal/game"
)

func testRound(player, computer, verdict string, at time.Time) *Round {
	return &Round{
		ID:           uuid.New().String(),
		PlayerMove:   player,
		ComputerMove: computer,
		Verdict:      verdict,
		CreatedAt:    at,
	}
}

func TestRoundRepository_CreateAndList(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	first := testRound("rock", "scissors", "player", base)
	second := testRound("paper", "paper", "tie", base.Add(time.Minute))

	if err := s.Rounds().Create(first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Rounds().Create(second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rounds, err := s.Rounds().List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(rounds) != 2 {
		t.Fatalf("List() returned %d rounds, want 2", len(rounds))
	}

	// Newest first.
	if rounds[0].ID != second.ID {
		t.Errorf("List()[0].ID = %s, want the newest round %s", rounds[0].ID, second.ID)
	}
	if rounds[1].PlayerMove != "rock" || rounds[1].ComputerMove != "scissors" || rounds[1].Verdict != "player" {
		t.Errorf("List()[1] = %+v, fields not round-tripped", rounds[1])
	}
}

func TestRoundRepository_ListLimit(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := testRound("rock", "rock", "tie", base.Add(time.Duration(i)*time.Second))
		if err := s.Rounds().Create(r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	rounds, err := s.Rounds().List(3)
	if err != nil {
		t.Fatalf("List(3) error = %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("List(3) returned %d rounds, want 3", len(rounds))
	}
}

func TestRoundRepository_CreateSetsTimestamp(t *testing.T) {
	s := newTestStore(t)

	r := &Round{
		ID:           uuid.New().String(),
		PlayerMove:   "pencil",
		ComputerMove: "rock",
		Verdict:      "computer",
	}

	if err := s.Rounds().Create(r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if r.CreatedAt.IsZero() {
		t.Error("Create() should fill in a zero CreatedAt")
	}
}

func TestRoundRepository_Stats(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	fixtures := []struct {
		player, computer, verdict string
	}{
		{"rock", "scissors", "player"},
		{"rock", "pencil", "player"},
		{"paper", "scissors", "computer"},
		{"pencil", "pencil", "tie"},
	}
	for i, f := range fixtures {
		r := testRound(f.player, f.computer, f.verdict, base.Add(time.Duration(i)*time.Second))
		if err := s.Rounds().Create(r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := s.Rounds().Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.Total != 4 || stats.Player != 2 || stats.Computer != 1 || stats.Ties != 1 {
		t.Errorf("Stats() = %+v, want total 4, player 2, computer 1, ties 1", stats)
	}
}

func TestRoundRepository_Clear(t *testing.T) {
	s := newTestStore(t)

	r := testRound("rock", "paper", "computer", time.Now())
	if err := s.Rounds().Create(r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Rounds().Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	rounds, err := s.Rounds().List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("List() after Clear returned %d rounds, want 0", len(rounds))
	}
}

func TestRoundLogger_RecordRound(t *testing.T) {
	s := newTestStore(t)

	round := game.Round{
		ID:       uuid.New().String(),
		Player:   game.MoveScissors,
		Computer: game.MovePencil,
		Verdict:  game.VerdictPlayer,
		Message:  "You win! Scissors beats pencil.",
	}

	if err := s.RoundLogger().RecordRound(round); err != nil {
		t.Fatalf("RecordRound() error = %v", err)
	}

	rounds, err := s.Rounds().List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("List() returned %d rounds, want 1", len(rounds))
	}

	got := rounds[0]
	if got.ID != round.ID || got.PlayerMove != "scissors" || got.ComputerMove != "pencil" || got.Verdict != "player" {
		t.Errorf("recorded round = %+v, want fields from %+v", got, round)
	}
}
