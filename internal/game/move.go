// Package game implements the round logic for the Mushti hand-gesture game:
// the move set, the win relation, score keeping, and the debounce state
// machine that turns noisy per-frame classifications into committed moves.
package game

import "strings"

// Move represents one of the four playable hand gestures.
type Move string

const (
	// MoveRock is a closed fist.
	MoveRock Move = "rock"
	// MovePaper is an open palm.
	MovePaper Move = "paper"
	// MoveScissors is index and middle fingers extended.
	MoveScissors Move = "scissors"
	// MovePencil is the index finger alone.
	MovePencil Move = "pencil"
	// MoveUnknown is the zero value for an unrecognized pose.
	MoveUnknown Move = "unknown"
)

// Moves lists the playable moves. MoveUnknown is not playable.
var Moves = []Move{MoveRock, MovePaper, MoveScissors, MovePencil}

// beats maps each move to the set of moves it defeats. The relation is
// intentionally not cyclic in the four-move extension: pencil beats paper
// but loses to rock and scissors.
var beats = map[Move]map[Move]bool{
	MoveRock:     {MoveScissors: true, MovePencil: true},
	MovePaper:    {MoveRock: true},
	MoveScissors: {MovePaper: true, MovePencil: true},
	MovePencil:   {MovePaper: true},
}

// Valid reports whether m is one of the four playable moves.
func (m Move) Valid() bool {
	switch m {
	case MoveRock, MovePaper, MoveScissors, MovePencil:
		return true
	}
	return false
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return beats[m][other]
}

// Title returns the move name with the first letter capitalized,
// for message formatting.
func (m Move) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// Observation is one frame's classification result.
type Observation struct {
	Move       Move    `json:"move"`
	Confidence float64 `json:"confidence"`
}
