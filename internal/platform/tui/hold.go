package tui

import (
	"time"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// Default release delays. Terminals wait before auto-repeating a held key,
// so the first press gets a longer grace than later repeats.
const (
	DefaultFirstGrace   = 500 * time.Millisecond
	DefaultReleaseAfter = 150 * time.Millisecond
)

// Hold tracks a held direction key and decides when it was let go.
// Terminals only report presses, so a release is inferred once no repeat
// has arrived within the grace period.
type Hold struct {
	FirstGrace   time.Duration
	ReleaseAfter time.Duration

	dir       core.Action
	last      time.Time
	repeating bool
}

// NewHold creates a tracker with the default delays.
func NewHold() *Hold {
	return &Hold{FirstGrace: DefaultFirstGrace, ReleaseAfter: DefaultReleaseAfter}
}

// Press records a direction key press at now.
func (h *Hold) Press(dir core.Action, now time.Time) {
	h.repeating = h.dir == dir
	h.dir = dir
	h.last = now
}

// Clear forgets the held direction.
func (h *Hold) Clear() {
	h.dir = core.ActionNone
	h.repeating = false
}

// Held returns the direction currently considered held.
func (h *Hold) Held() core.Action {
	return h.dir
}

// Expired reports whether the held key should be released at now.
// It clears the hold when it returns true.
func (h *Hold) Expired(now time.Time) bool {
	if h.dir == core.ActionNone {
		return false
	}

	grace := h.FirstGrace
	if h.repeating {
		grace = h.ReleaseAfter
	}
	if now.Sub(h.last) < grace {
		return false
	}

	h.Clear()
	return true
}
