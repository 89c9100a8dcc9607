// Package app orchestrates the Mushti game pipeline: camera capture, hand
// detection, gesture classification, and round resolution.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mushti/internal/capture"
	"github.com/ayusman/mushti/internal/detector"
	"github.com/ayusman/mushti/internal/game"
)

// Pipeline timing defaults.
const (
	// DefaultTick is the capture-classify-debounce cycle interval.
	DefaultTick = 30 * time.Millisecond
	// DefaultRetry is the cycle interval while camera reads are failing.
	DefaultRetry = 500 * time.Millisecond
)

// Config holds configuration options for the application.
type Config struct {
	Session  *game.Session
	CameraID int
	Width    int
	Height   int
	Tick     time.Duration
	Retry    time.Duration

	// MinDetectionConf and MinTrackingConf tune the hand-landmark model.
	// Zero values fall back to the detector defaults.
	MinDetectionConf float64
	MinTrackingConf  float64

	// Detector overrides the default MediaPipe detector. Used by tests.
	Detector detector.Detector
}

// App owns the camera and detector and runs the game's tick loop.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	session  *game.Session
	enabled  bool
	mu       sync.RWMutex
	stopCh   chan struct{}

	// Latest pipeline output, cached for the stream and websocket handlers.
	frameMu   sync.RWMutex
	lastJPEG  []byte
	lastHands []detector.HandLandmarks
	lastObs   game.Observation
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Tick <= 0 {
		config.Tick = DefaultTick
	}
	if config.Retry <= 0 {
		config.Retry = DefaultRetry
	}
	if config.Session == nil {
		config.Session = game.NewSession(game.SessionConfig{})
	}

	a := &App{
		config:  config,
		camera:  capture.NewCameraWithSize(config.CameraID, config.Width, config.Height),
		session: config.Session,
		enabled: true,
		stopCh:  nil,
	}

	if config.Detector != nil {
		a.detector = config.Detector
		return a
	}

	detConfig := detector.DefaultConfig()
	if config.MinDetectionConf > 0 {
		detConfig.MinConfidence = config.MinDetectionConf
	}
	if config.MinTrackingConf > 0 {
		detConfig.MinTrackingConf = config.MinTrackingConf
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detConfig); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture detection. The video keeps
// streaming while disabled; observations just stop reaching the game.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Start opens the camera and begins the tick loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Game pipeline started")
	return nil
}

// Stop halts the tick loop and releases the camera and detector.
// Safe to call after a failed Start.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Game pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Session returns the game session.
func (a *App) Session() *game.Session {
	return a.session
}

// LatestFrame returns the most recent JPEG-encoded frame, or false when no
// frame has been captured yet. The returned slice must not be modified.
func (a *App) LatestFrame() ([]byte, bool) {
	a.frameMu.RLock()
	defer a.frameMu.RUnlock()

	if a.lastJPEG == nil {
		return nil, false
	}
	return a.lastJPEG, true
}

// LatestDetection returns the most recent hand landmarks and observation.
func (a *App) LatestDetection() ([]detector.HandLandmarks, game.Observation) {
	a.frameMu.RLock()
	defer a.frameMu.RUnlock()
	return a.lastHands, a.lastObs
}
