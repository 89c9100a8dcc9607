package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// fingerChains groups the four landmark indices of each finger from
// knuckle to tip.
var fingerChains = [5][4]int{
	{ThumbCMC, ThumbMCP, ThumbIP, ThumbTip},
	{IndexMCP, IndexPIP, IndexDIP, IndexTip},
	{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip},
	{RingMCP, RingPIP, RingDIP, RingTip},
	{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip},
}

// poseLandmarks builds a plausible right hand where each finger is either
// extended (tip above the PIP joint, smaller Y) or curled (tip folded back
// below it). Fingers are fanned left to right across the palm.
func poseLandmarks(extended [5]bool) HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	for f, chain := range fingerChains {
		baseX := 0.62 - 0.06*float64(f)

		if extended[f] {
			// Joints climb from the knuckle to the tip.
			for j, idx := range chain {
				lm.Points[idx] = Point3D{
					X: baseX,
					Y: 0.68 - 0.11*float64(j),
					Z: 0.0,
				}
			}
		} else {
			// Curled: the tip folds back toward the palm, ending up
			// below the middle joints.
			lm.Points[chain[0]] = Point3D{X: baseX, Y: 0.68, Z: -0.02}
			lm.Points[chain[1]] = Point3D{X: baseX, Y: 0.62, Z: -0.05}
			lm.Points[chain[2]] = Point3D{X: baseX - 0.02, Y: 0.66, Z: -0.04}
			lm.Points[chain[3]] = Point3D{X: baseX - 0.03, Y: 0.71, Z: -0.02}
		}
	}

	return lm
}

// FistLandmarks returns a hand with every finger curled: the rock pose.
func FistLandmarks() HandLandmarks {
	return poseLandmarks([5]bool{false, false, false, false, false})
}

// OpenPalmLandmarks returns a hand with all five fingers extended: the
// paper pose.
func OpenPalmLandmarks() HandLandmarks {
	return poseLandmarks([5]bool{true, true, true, true, true})
}

// PencilLandmarks returns a hand with only the index finger extended:
// the pencil pose.
func PencilLandmarks() HandLandmarks {
	return poseLandmarks([5]bool{false, true, false, false, false})
}

// ScissorsLandmarks returns a hand with index and middle fingers extended:
// the scissors pose.
func ScissorsLandmarks() HandLandmarks {
	return poseLandmarks([5]bool{false, true, true, false, false})
}

// AmbiguousLandmarks returns a hand with only ring and pinky extended,
// a pose outside every move's rule.
func AmbiguousLandmarks() HandLandmarks {
	return poseLandmarks([5]bool{false, false, false, true, true})
}
