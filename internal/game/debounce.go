package game

import "time"

// Debounce defaults.
const (
	// DefaultCommitThreshold is the number of consecutive matching
	// observations required to commit a move.
	DefaultCommitThreshold = 10
	// DefaultCooldown is the quiet period after a committed round during
	// which no new round can commit.
	DefaultCooldown = 1800 * time.Millisecond
)

// Debouncer smooths per-frame classifications into committed moves.
//
// It accumulates consecutive identical non-unknown observations and commits
// the candidate once the threshold is reached, then refuses further commits
// until the cool-down deadline passes. The deadline is evaluated lazily on
// the next observation; there is no timer to cancel on Reset.
type Debouncer struct {
	threshold int
	cooldown  time.Duration

	candidate   Move
	count       int
	lockedUntil time.Time

	now func() time.Time
}

// NewDebouncer creates a Debouncer. Non-positive threshold or cooldown
// values fall back to the defaults.
func NewDebouncer(threshold int, cooldown time.Duration) *Debouncer {
	if threshold <= 0 {
		threshold = DefaultCommitThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{
		threshold: threshold,
		cooldown:  cooldown,
		candidate: MoveUnknown,
		now:       time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (d *Debouncer) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

// Observe feeds one observation into the state machine and reports whether
// it committed a move.
//
// While locked and before the cool-down deadline, observations are ignored.
// Once the deadline has passed the lock clears and the same observation is
// processed normally. An unknown move discards accumulated progress; a
// candidate change restarts the count at one.
func (d *Debouncer) Observe(obs Observation) (Move, bool) {
	if !d.lockedUntil.IsZero() {
		if d.now().Before(d.lockedUntil) {
			return MoveUnknown, false
		}
		d.lockedUntil = time.Time{}
	}

	if !obs.Move.Valid() {
		d.candidate = MoveUnknown
		d.count = 0
		return MoveUnknown, false
	}

	if obs.Move == d.candidate {
		d.count++
	} else {
		d.candidate = obs.Move
		d.count = 1
	}

	if d.count < d.threshold {
		return MoveUnknown, false
	}

	committed := d.candidate
	d.candidate = MoveUnknown
	d.count = 0
	d.lockedUntil = d.now().Add(d.cooldown)

	return committed, true
}

// Reset returns the debouncer to the idle state, clearing the candidate,
// the count, and any pending cool-down deadline.
func (d *Debouncer) Reset() {
	d.candidate = MoveUnknown
	d.count = 0
	d.lockedUntil = time.Time{}
}

// Locked reports whether the debouncer is inside a cool-down window.
func (d *Debouncer) Locked() bool {
	return !d.lockedUntil.IsZero() && d.now().Before(d.lockedUntil)
}

// Progress returns the current candidate and how many consecutive
// observations it has accumulated.
func (d *Debouncer) Progress() (Move, int) {
	return d.candidate, d.count
}
