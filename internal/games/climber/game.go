// Package climber implements a vertical platformer: a small rectangle hops
// between rows of platforms that scroll down the screen while new rows
// appear at the top.
package climber

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-climber/internal/config"
	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/levels"
	"github.com/vovakirdan/sky-climber/internal/registry"
)

// Identity under which the game registers.
const (
	ID    = "climber"
	Title = "Sky Climber"
)

// Game adapts a Simulation to the registry.Game contract.
type Game struct {
	sim     *Simulation
	cfg     config.ClimberConfig
	level   levels.Level
	runtime core.RuntimeConfig
	paused  bool
}

// Settings chosen on the command line, applied on every Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelRef         string
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevel selects the initial grid by file path or builtin level ID.
func SetLevel(ref string) {
	levelRef = ref
}

// SetLogger sets the logger handed to new simulations.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a new climber game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset loads config and level and builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadClimber(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultClimberConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	level, err := levels.Resolve(levelRef)
	if err != nil {
		if logger != nil {
			logger.Warn("using default level", "level", levelRef, "err", err)
		}
		level = levels.Default()
	}
	g.level = level

	g.sim = NewSimulation(Options{
		Config: cfg,
		Grid:   level.Grid,
		Seed:   runtime.Seed,
		Logger: logger,
	})
	g.paused = false
}

// Step handles one host frame: pause toggle, intents in arrival order,
// then as many fixed ticks as the frame duration covers.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Sequence() {
		if intent := IntentFromAction(a); intent != IntentNone {
			g.sim.Apply(intent)
		}
	}

	ticks := g.sim.Advance(g.FrameDuration())
	return core.StepResult{State: g.State(), Ticks: ticks}
}

// FrameDuration is the host frame length implied by the runtime tick rate.
func (g *Game) FrameDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Spawn runs one spawner cycle unless paused. Hosts call it on their own timer.
func (g *Game) Spawn() int {
	if g.paused {
		return 0
	}
	return g.sim.Spawn()
}

// SpawnInterval returns the current spawn period.
func (g *Game) SpawnInterval() time.Duration {
	return g.sim.SpawnInterval()
}

// Simulation exposes the underlying world.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Config returns the config used by the last Reset.
func (g *Game) Config() config.ClimberConfig {
	return g.cfg
}

// Level returns the level used by the last Reset.
func (g *Game) Level() levels.Level {
	return g.level
}

// ApplyConfig takes the physics, spawner interval and difficulty of a
// reloaded config without resetting the world. The command-line
// difficulty preset still wins. Other sections apply on the next Reset.
func (g *Game) ApplyConfig(cfg config.ClimberConfig) {
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg.Physics = cfg.Physics
	g.cfg.Spawner.Interval = cfg.Spawner.Interval
	g.cfg.Difficulty = cfg.Difficulty
	g.sim.Retune(cfg)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	sink := NewScreenSink(dst, g.cfg.World.Width, g.cfg.World.Height)
	snap := g.sim.Snapshot()
	RenderSnapshot(snap, sink)

	p := snap.Player
	sink.DrawStatus(fmt.Sprintf(" obs:%d x:%.0f y:%.0f vy:%+.2f  %s",
		len(snap.Obstacles), p.Box.X, p.Box.Y, p.VY, g.level.Name))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state. The climber has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: Title}, func() registry.Game {
		return New()
	})
}
