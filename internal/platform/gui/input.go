package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// KeyState reports keyboard state for the current update.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// KeyMap lists the keys bound to each action.
type KeyMap struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Jump    []ebiten.Key
	Pause   []ebiten.Key
	Restart []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultKeyMap returns the window key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		Pause:   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		Restart: []ebiten.Key{ebiten.KeyR},
		Quit:    []ebiten.Key{ebiten.KeyQ},
	}
}

func anyKey(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}

// Collect records this update's key events into frame and reports
// whether quit was pressed. Letting go of one direction while the other
// is still held switches to the held one instead of stopping.
func (km KeyMap) Collect(ks KeyState, frame *core.InputFrame) (quit bool) {
	if anyKey(km.Quit, ks.JustPressed) {
		return true
	}

	if anyKey(km.Left, ks.JustPressed) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(km.Right, ks.JustPressed) {
		frame.Set(core.ActionRight)
	}

	leftHeld := anyKey(km.Left, ks.Pressed)
	rightHeld := anyKey(km.Right, ks.Pressed)

	if anyKey(km.Left, ks.JustReleased) && !leftHeld {
		if rightHeld {
			frame.Set(core.ActionRight)
		} else {
			frame.Set(core.ActionStop)
		}
	}
	if anyKey(km.Right, ks.JustReleased) && !rightHeld {
		if leftHeld {
			frame.Set(core.ActionLeft)
		} else {
			frame.Set(core.ActionStop)
		}
	}

	if anyKey(km.Jump, ks.JustPressed) {
		frame.Set(core.ActionJump)
	}
	if anyKey(km.Pause, ks.JustPressed) {
		frame.Set(core.ActionPause)
	}
	if anyKey(km.Restart, ks.JustPressed) {
		frame.Set(core.ActionRestart)
	}
	return false
}
