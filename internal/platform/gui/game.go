// Package gui runs a game in a desktop window with ebiten. Unlike a
// terminal, the window sees real key releases.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/games/climber"
)

// Options configures a window.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64     // Window size multiplier; 0 means 1
	Logger  *log.Logger // nil discards
}

// Game is the ebiten.Game driving one climber world.
type Game struct {
	game    *climber.Game
	runtime core.RuntimeConfig
	keys    KeyState
	keymap  KeyMap
	clock   climber.SpawnClock
	last    time.Time
	now     func() time.Time
	logger  *log.Logger
}

// NewGame wraps g for a window host. Call Reset before the first Update.
func NewGame(g *climber.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runtime := opts.Runtime
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	return &Game{
		game:    g,
		runtime: runtime,
		keys:    ebitenKeys{},
		keymap:  DefaultKeyMap(),
		now:     time.Now,
		logger:  logger,
	}
}

// Reset rebuilds the world and restarts the spawn clock.
func (g *Game) Reset() {
	g.game.Reset(g.runtime)
	g.clock = climber.SpawnClock{Interval: g.game.SpawnInterval()}
	g.last = g.now()
	g.logger.Info("game started", "game", g.game.ID(), "seed", g.runtime.Seed)
}

// Update runs one host frame.
func (g *Game) Update() error {
	frame := core.NewInputFrame()
	if g.keymap.Collect(g.keys, &frame) {
		g.logger.Info("quit")
		return ebiten.Termination
	}

	if frame.Has(core.ActionRestart) {
		g.Reset()
		return nil
	}

	g.game.Step(frame)

	now := g.now()
	for range g.clock.Due(now.Sub(g.last)) {
		g.game.Spawn()
	}
	g.clock.Interval = g.game.SpawnInterval()
	g.last = now
	return nil
}

// Draw renders the world and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.game.Simulation().World()
	sink := NewImageSink(screen, w, h)
	snap := g.game.Simulation().Snapshot()
	climber.RenderSnapshot(snap, sink)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("obs:%d vy:%+.2f", len(snap.Obstacles), snap.Player.VY), 4, 4)
	if g.game.State().Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(w)/2-18, int(h)/2)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.Simulation().World()
	return int(w), int(h)
}

// Run opens the window and blocks until it closes.
func Run(g *climber.Game, opts Options) error {
	host := NewGame(g, opts)
	host.Reset()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Simulation().World()

	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(host.runtime.TickRate)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
