// Package tray provides a macOS system tray interface for the Mushti game.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the macOS system tray application.
type Tray struct {
	onToggle     func(enabled bool)
	onReset      func()
	onScoreboard func()
	onQuit       func()
	enabled      bool
	mu           sync.RWMutex

	// Menu items stored for later updates
	menuToggle    *systray.MenuItem
	menuScore     *systray.MenuItem
	menuLastRound *systray.MenuItem
}

// New creates a new Tray instance with enabled state set to true by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnReset sets the callback function to be called when the reset menu item is clicked.
func (t *Tray) OnReset(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onReset = fn
}

// OnScoreboard sets the callback function to be called when the scoreboard menu item is clicked.
func (t *Tray) OnScoreboard(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onScoreboard = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	// Set the tray title and tooltip
	systray.SetTitle("Mushti")
	systray.SetTooltip("Mushti Rock Paper Scissors Pencil")

	// Create menu items
	t.menuToggle = systray.AddMenuItem("● Playing", "Toggle gesture detection")
	systray.AddSeparator()

	t.menuScore = systray.AddMenuItem("You 0 - 0 Me (0 ties)", "Current score")
	t.menuScore.Disable()

	t.menuLastRound = systray.AddMenuItem("Last round: none", "Last resolved round")
	t.menuLastRound.Disable()
	systray.AddSeparator()

	menuReset := systray.AddMenuItem("Reset Score", "Zero the score and start over")
	menuScoreboard := systray.AddMenuItem("Open Scoreboard...", "Open scoreboard in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mushti")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuReset.ClickedCh:
				t.handleReset()
			case <-menuScoreboard.ClickedCh:
				t.handleScoreboard()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
// It performs cleanup tasks.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	// Update menu item text based on new state
	if enabled {
		t.menuToggle.SetTitle("● Playing")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleReset handles the reset menu item click.
func (t *Tray) handleReset() {
	t.mu.RLock()
	callback := t.onReset
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleScoreboard handles the scoreboard menu item click.
func (t *Tray) handleScoreboard() {
	t.mu.RLock()
	callback := t.onScoreboard
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetScore updates the score display in the menu.
func (t *Tray) SetScore(player, computer, ties int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScore != nil {
		t.menuScore.SetTitle(fmt.Sprintf("You %d - %d Me (%d ties)", player, computer, ties))
	}
}

// SetLastRound updates the last round display in the menu.
func (t *Tray) SetLastRound(summary string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastRound != nil {
		if summary == "" {
			t.menuLastRound.SetTitle("Last round: none")
		} else {
			t.menuLastRound.SetTitle("Last round: " + summary)
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
