package tui

import (
	"time"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

// DefaultHoldWindow is how long a key stays held after its last press event.
const DefaultHoldWindow = 120 * time.Millisecond

// HoldTracker turns key press events into held buttons. Terminals report
// presses and auto-repeats but no releases, so a button counts as down
// while its latest press is younger than the window.
type HoldTracker struct {
	window   time.Duration
	lastSeen [core.ButtonCount]time.Time
}

// NewHoldTracker creates a tracker. Non-positive windows use the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window}
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// Press records a press (or auto-repeat) of b at now.
func (h *HoldTracker) Press(b core.Button, now time.Time) {
	if b < 0 || b >= core.ButtonCount {
		return
	}
	h.lastSeen[b] = now
}

// Down returns the buttons held at now.
func (h *HoldTracker) Down(now time.Time) core.ButtonSet {
	var set core.ButtonSet
	for b := core.Button(0); b < core.ButtonCount; b++ {
		seen := h.lastSeen[b]
		if !seen.IsZero() && now.Sub(seen) < h.window {
			set = set.Add(b)
		}
	}
	return set
}

// Release forgets every press.
func (h *HoldTracker) Release() {
	h.lastSeen = [core.ButtonCount]time.Time{}
}
