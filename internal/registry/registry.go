// Package registry maps game IDs to factories. Games register themselves
// in init(), so hosts such as the SSH server can build one instance per
// session by ID.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// Game is the contract between a game and the hosts that run it.
// Games hold pure logic and never import Bubble Tea or ebiten; the host
// handles input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "climber").
	// Used for CLI commands and SSH session setup.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh world.
	// Called once at start and again on restart.
	// The RuntimeConfig provides the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one host frame. Actions arrive in the order they were
	// pressed; the game decides how many fixed ticks the frame covers.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current world into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under info.ID. Called from init(); an empty or
// duplicate ID panics.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: game needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q registered twice", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(entries))
}

// Lookup returns the metadata of a registered game. The error names
// the games that are registered.
func Lookup(id string) (GameInfo, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return GameInfo{}, fmt.Errorf("registry: unknown game %q (registered: %s)",
			id, strings.Join(IDs(), ", "))
	}
	return e.info, nil
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		_, err := Lookup(id)
		return nil, err
	}
	return e.factory(), nil
}
