package game

import (
	"testing"
	"time"
)

// fakeClock is a controllable time source for debouncer tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func observe(d *Debouncer, m Move, n int) (committed []Move) {
	for i := 0; i < n; i++ {
		if move, ok := d.Observe(Observation{Move: m, Confidence: 1.0}); ok {
			committed = append(committed, move)
		}
	}
	return committed
}

func TestDebouncer_CommitsAfterThreshold(t *testing.T) {
	d := NewDebouncer(10, DefaultCooldown)

	committed := observe(d, MoveRock, 10)

	if len(committed) != 1 {
		t.Fatalf("10 rock observations committed %d rounds, want 1", len(committed))
	}
	if committed[0] != MoveRock {
		t.Errorf("committed move = %s, want rock", committed[0])
	}
}

func TestDebouncer_UnknownResetsProgress(t *testing.T) {
	d := NewDebouncer(10, DefaultCooldown)

	observe(d, MoveRock, 9)
	if _, ok := d.Observe(Observation{Move: MoveUnknown}); ok {
		t.Fatal("unknown observation must not commit")
	}

	// The break discarded progress, so nine more are not enough.
	if committed := observe(d, MoveRock, 9); len(committed) != 0 {
		t.Errorf("9 observations after reset committed %d rounds, want 0", len(committed))
	}
	if committed := observe(d, MoveRock, 1); len(committed) != 1 {
		t.Errorf("10th observation after reset committed %d rounds, want 1", len(committed))
	}
}

func TestDebouncer_CandidateChangeRestartsCount(t *testing.T) {
	d := NewDebouncer(10, DefaultCooldown)

	observe(d, MoveRock, 9)
	observe(d, MovePaper, 9)

	candidate, count := d.Progress()
	if candidate != MovePaper || count != 9 {
		t.Errorf("Progress() = (%s, %d), want (paper, 9)", candidate, count)
	}

	if committed := observe(d, MovePaper, 1); len(committed) != 1 || committed[0] != MovePaper {
		t.Errorf("expected paper to commit on its 10th observation, got %v", committed)
	}
}

func TestDebouncer_LockSuppressesCommits(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10, DefaultCooldown)
	d.SetClock(clock.Now)

	if committed := observe(d, MoveRock, 10); len(committed) != 1 {
		t.Fatalf("first burst committed %d rounds, want 1", len(committed))
	}
	if !d.Locked() {
		t.Fatal("debouncer should be locked after a commit")
	}

	// A still-held gesture inside the cool-down must not re-commit.
	if committed := observe(d, MoveRock, 30); len(committed) != 0 {
		t.Errorf("observations during cool-down committed %d rounds, want 0", len(committed))
	}
}

func TestDebouncer_UnlocksAfterCooldown(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10, DefaultCooldown)
	d.SetClock(clock.Now)

	observe(d, MoveRock, 10)

	clock.Advance(DefaultCooldown + time.Millisecond)

	if d.Locked() {
		t.Fatal("debouncer should unlock once the deadline passes")
	}

	// The first observation after the deadline counts; ten commit again.
	if committed := observe(d, MovePaper, 10); len(committed) != 1 || committed[0] != MovePaper {
		t.Errorf("post-cooldown burst committed %v, want one paper", committed)
	}
}

func TestDebouncer_LazyUnlockProcessesSameObservation(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(3, time.Second)
	d.SetClock(clock.Now)

	observe(d, MoveRock, 3)

	clock.Advance(2 * time.Second)

	// This single observation both clears the lock and starts a new count.
	if _, ok := d.Observe(Observation{Move: MoveScissors, Confidence: 1.0}); ok {
		t.Fatal("first post-cooldown observation must not commit at threshold 3")
	}

	candidate, count := d.Progress()
	if candidate != MoveScissors || count != 1 {
		t.Errorf("Progress() = (%s, %d), want (scissors, 1)", candidate, count)
	}
}

func TestDebouncer_ResetCancelsCooldown(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10, time.Hour)
	d.SetClock(clock.Now)

	observe(d, MoveRock, 10)
	if !d.Locked() {
		t.Fatal("expected lock after commit")
	}

	d.Reset()

	if d.Locked() {
		t.Error("Reset() must clear the cool-down deadline")
	}

	candidate, count := d.Progress()
	if candidate != MoveUnknown || count != 0 {
		t.Errorf("Progress() after Reset = (%s, %d), want (unknown, 0)", candidate, count)
	}

	// Fully playable again without waiting out the hour-long cool-down.
	if committed := observe(d, MovePencil, 10); len(committed) != 1 || committed[0] != MovePencil {
		t.Errorf("post-reset burst committed %v, want one pencil", committed)
	}
}

func TestDebouncer_Scenario(t *testing.T) {
	// [rock]x10 commits once; [rock]x10 within cool-down commits nothing;
	// after the window passes, [paper]x10 commits exactly one paper.
	clock := newFakeClock()
	d := NewDebouncer(10, DefaultCooldown)
	d.SetClock(clock.Now)

	first := observe(d, MoveRock, 10)
	if len(first) != 1 || first[0] != MoveRock {
		t.Fatalf("first burst = %v, want one rock", first)
	}

	second := observe(d, MoveRock, 10)
	if len(second) != 0 {
		t.Fatalf("burst within cool-down = %v, want none", second)
	}

	clock.Advance(DefaultCooldown + 10*time.Millisecond)

	third := observe(d, MovePaper, 10)
	if len(third) != 1 || third[0] != MovePaper {
		t.Fatalf("post-cooldown burst = %v, want one paper", third)
	}
}

func TestNewDebouncer_Defaults(t *testing.T) {
	d := NewDebouncer(0, 0)

	if d.threshold != DefaultCommitThreshold {
		t.Errorf("threshold = %d, want %d", d.threshold, DefaultCommitThreshold)
	}
	if d.cooldown != DefaultCooldown {
		t.Errorf("cooldown = %s, want %s", d.cooldown, DefaultCooldown)
	}
}
