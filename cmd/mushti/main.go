package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ayusman/mushti/internal/app"
	"github.com/ayusman/mushti/internal/config"
	"github.com/ayusman/mushti/internal/game"
	"github.com/ayusman/mushti/internal/server"
	"github.com/ayusman/mushti/internal/store"
	"github.com/ayusman/mushti/internal/tray"
)

func main() {
	fmt.Println("Mushti - Rock Paper Scissors Pencil")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the store
	dbPath := cfg.DBPath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dbDir := filepath.Join(homeDir, ".mushti")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dbDir, "mushti.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the game session with the store recording round history
	session := game.NewSession(game.SessionConfig{
		CommitThreshold: cfg.CommitThreshold,
		Cooldown:        cfg.Cooldown(),
		Recorder:        st.RoundLogger(),
	})

	// Build and start the capture pipeline
	a := app.New(app.Config{
		Session:          session,
		CameraID:         cfg.CameraID,
		Width:            cfg.Width,
		Height:           cfg.Height,
		Tick:             cfg.Tick(),
		Retry:            cfg.Retry(),
		MinDetectionConf: cfg.MinDetectionConf,
		MinTrackingConf:  cfg.MinTrackingConf,
	})
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to open camera %d: %v", cfg.CameraID, err)
	}
	defer a.Stop()

	// Restore the detection toggle from the last run
	if v, err := st.Settings().Get("detection_enabled"); err == nil {
		a.SetEnabled(v == "true")
	}

	// Find web directory
	webDir := cfg.StaticDir
	if webDir == "" {
		webDir = findWebDir()
	}
	if webDir != "" {
		fmt.Printf("Serving scoreboard from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main goroutine until quit
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		value := "false"
		if enabled {
			value = "true"
		}
		if err := st.Settings().Set("detection_enabled", value); err != nil {
			log.Printf("Failed to persist detection toggle: %v", err)
		}
		log.Printf("Gesture detection enabled: %v", enabled)
	})
	t.OnReset(func() {
		a.ResetGame()
		snap := a.Snapshot()
		t.SetScore(snap.Score.Player, snap.Score.Computer, snap.Score.Ties)
		t.SetLastRound("")
	})
	t.OnScoreboard(func() {
		openBrowser("http://localhost" + cfg.Addr)
	})
	t.OnQuit(func() {
		log.Println("Shutting down")
	})

	// Keep the tray's score and last-round lines current.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			snap := a.Snapshot()
			t.SetScore(snap.Score.Player, snap.Score.Computer, snap.Score.Ties)
			if snap.LastRound != nil {
				t.SetLastRound(fmt.Sprintf("%s vs %s", snap.LastRound.Player, snap.LastRound.Computer))
			}
		}
	}()

	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mushti/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mushti", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
