package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mushti/internal/detector"
	"github.com/ayusman/mushti/internal/game"
	"github.com/ayusman/mushti/internal/gesture"
	"github.com/ayusman/mushti/internal/metrics"
)

// runPipeline is the game's tick loop.
//
// Each tick performs one capture-classify-debounce cycle:
//  1. Read a mirrored frame; on failure, back the ticker off to the retry
//     interval until a read succeeds again.
//  2. Detect at most one hand and classify it into an observation.
//  3. Feed the observation to the session; a committed round resolves
//     inside the session and shows up in its snapshot.
//  4. Cache the annotated frame as JPEG for the stream handler.
func (a *App) runPipeline() {
	interval := a.config.Tick
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	retrying := false

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				metrics.CameraReadErrors.Inc()
				if !retrying {
					retrying = true
					ticker.Reset(a.config.Retry)
					log.Printf("Error reading frame, retrying every %s: %v", a.config.Retry, err)
				}
				continue
			}

			if retrying {
				retrying = false
				ticker.Reset(interval)
				log.Println("Camera recovered")
			}

			a.processFrame(frame)
			frame.Close()
		}
	}
}

// processFrame runs detection and classification on one frame, feeds the
// game, and caches the annotated frame for streaming.
func (a *App) processFrame(frame *gocv.Mat) {
	hands, err := a.Detector().Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		hands = nil
	}

	var hand *detector.HandLandmarks
	if len(hands) > 0 {
		hand = &hands[0]
	}

	obs := gesture.Classify(hand)

	if a.IsEnabled() {
		if round, ok := a.session.Observe(obs); ok {
			metrics.RoundsResolved.WithLabelValues(string(round.Verdict)).Inc()
			log.Printf("Round %s: %s vs %s - %s", round.ID, round.Player, round.Computer, round.Message)
		}
	}

	drawLandmarks(frame, hands)

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		log.Printf("Error encoding frame: %v", err)
		return
	}
	encoded := make([]byte, buf.Len())
	copy(encoded, buf.GetBytes())
	buf.Close()

	a.frameMu.Lock()
	a.lastJPEG = encoded
	a.lastHands = hands
	a.lastObs = obs
	a.frameMu.Unlock()

	metrics.FramesProcessed.Inc()
}

// landmark drawing colors
var (
	landmarkColor   = color.RGBA{R: 8, G: 247, B: 254, A: 255}
	connectionColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// handConnections lists the landmark index pairs that form the hand
// skeleton, following the MediaPipe topology.
var handConnections = [][2]int{
	{detector.Wrist, detector.ThumbCMC}, {detector.ThumbCMC, detector.ThumbMCP},
	{detector.ThumbMCP, detector.ThumbIP}, {detector.ThumbIP, detector.ThumbTip},
	{detector.Wrist, detector.IndexMCP}, {detector.IndexMCP, detector.IndexPIP},
	{detector.IndexPIP, detector.IndexDIP}, {detector.IndexDIP, detector.IndexTip},
	{detector.IndexMCP, detector.MiddleMCP}, {detector.MiddleMCP, detector.MiddlePIP},
	{detector.MiddlePIP, detector.MiddleDIP}, {detector.MiddleDIP, detector.MiddleTip},
	{detector.MiddleMCP, detector.RingMCP}, {detector.RingMCP, detector.RingPIP},
	{detector.RingPIP, detector.RingDIP}, {detector.RingDIP, detector.RingTip},
	{detector.RingMCP, detector.PinkyMCP}, {detector.Wrist, detector.PinkyMCP},
	{detector.PinkyMCP, detector.PinkyPIP}, {detector.PinkyPIP, detector.PinkyDIP},
	{detector.PinkyDIP, detector.PinkyTip},
}

// drawLandmarks overlays detected hand skeletons onto the frame.
// Landmark coordinates are normalized; scale by the frame size.
func drawLandmarks(frame *gocv.Mat, hands []detector.HandLandmarks) {
	cols := frame.Cols()
	rows := frame.Rows()
	if cols == 0 || rows == 0 {
		return
	}

	for i := range hands {
		hand := &hands[i]

		points := make([]image.Point, detector.NumLandmarks)
		for j, p := range hand.Points {
			points[j] = image.Point{
				X: int(p.X * float64(cols)),
				Y: int(p.Y * float64(rows)),
			}
		}

		for _, conn := range handConnections {
			gocv.Line(frame, points[conn[0]], points[conn[1]], connectionColor, 2)
		}
		for _, pt := range points {
			gocv.Circle(frame, pt, 4, landmarkColor, -1)
		}
	}
}

// ResetGame resets the session and bumps the reset counter.
func (a *App) ResetGame() {
	a.session.Reset()
	metrics.SessionResets.Inc()

	snap := a.session.Snapshot()
	log.Printf("Game reset: %s", snap.Status)
}

// Snapshot returns the session's current score and status.
func (a *App) Snapshot() game.Snapshot {
	return a.session.Snapshot()
}
