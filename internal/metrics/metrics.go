// Package metrics exposes Prometheus counters for the game pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FramesProcessed counts frames that completed a classify-debounce cycle.
	FramesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mushti_frames_processed_total",
			Help: "Total frames read from the camera and processed",
		},
	)

	// CameraReadErrors counts failed frame reads.
	CameraReadErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mushti_camera_read_errors_total",
			Help: "Total camera frame reads that failed",
		},
	)

	// RoundsResolved counts resolved rounds by verdict.
	RoundsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mushti_rounds_resolved_total",
			Help: "Total resolved rounds by verdict",
		},
		[]string{"verdict"},
	)

	// SessionResets counts explicit game resets.
	SessionResets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mushti_session_resets_total",
			Help: "Total explicit game resets",
		},
	)
)

func init() {
	prometheus.MustRegister(FramesProcessed)
	prometheus.MustRegister(CameraReadErrors)
	prometheus.MustRegister(RoundsResolved)
	prometheus.MustRegister(SessionResets)
}
