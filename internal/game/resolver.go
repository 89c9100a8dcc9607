package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Verdict is the result of a resolved round.
type Verdict string

const (
	// VerdictTie means neither side won the round.
	VerdictTie Verdict = "tie"
	// VerdictPlayer means the player's move beat the computer's.
	VerdictPlayer Verdict = "player"
	// VerdictComputer means the computer's move beat the player's.
	VerdictComputer Verdict = "computer"
)

// Outcome carries a resolved round's moves and verdict for message formatting.
type Outcome struct {
	Player   Move    `json:"player"`
	Computer Move    `json:"computer"`
	Verdict  Verdict `json:"verdict"`
}

// Message formats the outcome the way the scoreboard displays it.
func (o Outcome) Message() string {
	switch o.Verdict {
	case VerdictPlayer:
		return fmt.Sprintf("You win! %s beats %s.", o.Player.Title(), o.Computer)
	case VerdictComputer:
		return fmt.Sprintf("I win! %s beats %s.", o.Computer.Title(), o.Player)
	default:
		return "It's a tie!"
	}
}

// Score holds the cumulative counters for one game session.
type Score struct {
	Player   int `json:"player"`
	Computer int `json:"computer"`
	Ties     int `json:"ties"`
}

// Resolver resolves rounds and owns the session score. It is the single
// writer of the score; callers serialize access.
type Resolver struct {
	score Score
	rng   *rand.Rand
}

// NewResolver creates a Resolver with a time-seeded random source for
// computer moves.
func NewResolver() *Resolver {
	return &Resolver{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the random source used for computer moves.
// Intended for tests that need a fixed draw.
func (r *Resolver) SetRand(rng *rand.Rand) {
	if rng != nil {
		r.rng = rng
	}
}

// ComputerMove draws a move uniformly at random, independent of the
// player's move.
func (r *Resolver) ComputerMove() Move {
	return Moves[r.rng.Intn(len(Moves))]
}

// Resolve compares the two moves, increments exactly one score counter,
// and returns the outcome. Any pair not covered by the win relation,
// including equal moves, is a tie.
func (r *Resolver) Resolve(player, computer Move) Outcome {
	o := Outcome{Player: player, Computer: computer}

	switch {
	case player.Beats(computer):
		o.Verdict = VerdictPlayer
		r.score.Player++
	case computer.Beats(player):
		o.Verdict = VerdictComputer
		r.score.Computer++
	default:
		o.Verdict = VerdictTie
		r.score.Ties++
	}

	return o
}

// Score returns a copy of the current score counters.
func (r *Resolver) Score() Score {
	return r.score
}

// Reset zeroes all score counters.
func (r *Resolver) Reset() {
	r.score = Score{}
}
