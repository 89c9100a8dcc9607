// Package gesture classifies hand landmarks into game moves.
package gesture

import (
	"github.com/ayusman/mushti/internal/detector"
	"github.com/ayusman/mushti/internal/game"
)

// fingerLandmarks maps each finger to its (tip, pip) landmark index pair.
// A finger counts as extended when its tip sits above its pip joint in
// image coordinates (smaller Y is higher).
var fingerLandmarks = [5][2]int{
	{detector.ThumbTip, detector.ThumbIP},
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// Finger indices into the extension array.
const (
	thumb = iota
	index
	middle
	ring
	pinky
)

// Classify maps one detected hand to a game observation:
// no fingers extended is rock, all five is paper, index alone is pencil,
// index plus middle is scissors, and anything else is unknown.
// A nil hand yields unknown with confidence zero.
//
// The classifier is stateless; temporal smoothing is the debouncer's job.
func Classify(hand *detector.HandLandmarks) game.Observation {
	if hand == nil {
		return game.Observation{Move: game.MoveUnknown, Confidence: 0}
	}

	var extended [5]bool
	for i, pair := range fingerLandmarks {
		tip, pip := hand.Points[pair[0]], hand.Points[pair[1]]
		extended[i] = tip.Y < pip.Y
	}

	move := classifyExtension(extended)
	confidence := 1.0
	if move == game.MoveUnknown {
		confidence = 0
	}

	return game.Observation{Move: move, Confidence: confidence}
}

// classifyExtension applies the finger-combination rules.
func classifyExtension(e [5]bool) game.Move {
	anyExtended := e[thumb] || e[index] || e[middle] || e[ring] || e[pinky]

	switch {
	case !anyExtended:
		return game.MoveRock
	case e[thumb] && e[index] && e[middle] && e[ring] && e[pinky]:
		return game.MovePaper
	case e[index] && !e[middle] && !e[ring] && !e[pinky]:
		return game.MovePencil
	case e[index] && e[middle] && !e[ring] && !e[pinky]:
		return game.MoveScissors
	default:
		return game.MoveUnknown
	}
}
