package climber

import "github.com/vovakirdan/sky-climber/internal/core"

// Intent is a discrete player command from the input source.
type Intent int

const (
	IntentNone Intent = iota
	IntentPressLeft
	IntentPressRight
	IntentRelease
	IntentJump
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentPressLeft:
		return "press-left"
	case IntentPressRight:
		return "press-right"
	case IntentRelease:
		return "release"
	case IntentJump:
		return "jump"
	default:
		return "unknown"
	}
}

// ParseIntent converts a script token ("left", "right", "stop", "jump") to an intent.
func ParseIntent(s string) (Intent, bool) {
	switch s {
	case "left", "press-left":
		return IntentPressLeft, true
	case "right", "press-right":
		return IntentPressRight, true
	case "stop", "release":
		return IntentRelease, true
	case "jump":
		return IntentJump, true
	case "none", "":
		return IntentNone, true
	default:
		return IntentNone, false
	}
}

// IntentFromAction maps a platform action to a player intent.
func IntentFromAction(a core.Action) Intent {
	switch a {
	case core.ActionLeft:
		return IntentPressLeft
	case core.ActionRight:
		return IntentPressRight
	case core.ActionStop:
		return IntentRelease
	case core.ActionJump:
		return IntentJump
	default:
		return IntentNone
	}
}

// Player is the controllable rectangle.
type Player struct {
	Box         core.Box
	VY          float64 // Vertical velocity accumulator, positive is down
	Jumping     bool    // Jump requested, consumed by the next tick
	MovingLeft  bool
	MovingRight bool
}

// NewPlayer creates a resting player with the given hitbox.
func NewPlayer(x, y, w, h float64) Player {
	return Player{Box: core.NewBox(x, y, w, h)}
}

// Apply mutates the input flags. Left and right stay mutually exclusive.
func (p *Player) Apply(in Intent) {
	switch in {
	case IntentPressLeft:
		p.MovingLeft = true
		p.MovingRight = false
	case IntentPressRight:
		p.MovingRight = true
		p.MovingLeft = false
	case IntentRelease:
		p.MovingLeft = false
		p.MovingRight = false
	case IntentJump:
		p.Jumping = true
	case IntentNone:
	}
}
