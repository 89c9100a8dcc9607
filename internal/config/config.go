// Package config loads process configuration from defaults, an optional
// YAML file, and MUSHTI_-prefixed environment variables.
package config

import (
	"time"

	"github.com/ayusman/mushti/internal/game"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StaticDir overrides the scoreboard static file directory.
	StaticDir string `koanf:"static_dir"`

	// DBPath overrides the SQLite database path.
	DBPath string `koanf:"db_path"`

	// CameraID selects the capture device.
	CameraID int `koanf:"camera_id"`

	// Width and Height set the capture resolution.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// TickMs is the capture-classify-debounce cycle interval.
	TickMs int `koanf:"tick_ms"`

	// RetryMs is the cycle interval while camera reads are failing.
	RetryMs int `koanf:"retry_ms"`

	// CommitThreshold is the consecutive-observation count to commit a move.
	CommitThreshold int `koanf:"commit_threshold"`

	// CooldownMs is the quiet period after each committed round.
	CooldownMs int `koanf:"cooldown_ms"`

	// MinDetectionConf and MinTrackingConf tune the hand-landmark model.
	MinDetectionConf float64 `koanf:"min_detection_conf"`
	MinTrackingConf  float64 `koanf:"min_tracking_conf"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:             ":8080",
		CameraID:         0,
		Width:            1280,
		Height:           720,
		TickMs:           30,
		RetryMs:          500,
		CommitThreshold:  game.DefaultCommitThreshold,
		CooldownMs:       int(game.DefaultCooldown / time.Millisecond),
		MinDetectionConf: 0.7,
		MinTrackingConf:  0.6,
	}
}

// Tick returns the cycle interval as a duration.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// Retry returns the failed-read cycle interval as a duration.
func (c *Config) Retry() time.Duration {
	return time.Duration(c.RetryMs) * time.Millisecond
}

// Cooldown returns the post-round quiet period as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMs) * time.Millisecond
}
