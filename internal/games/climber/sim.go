package climber

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-climber/internal/config"
)

// Options configures a new Simulation.
type Options struct {
	Config config.ClimberConfig
	Grid   [][]int // Initial layout; nil uses DefaultGrid
	Seed   int64
	Logger *log.Logger // Optional; nil disables logging
}

// Snapshot is a copy of the world safe to read outside the lock.
type Snapshot struct {
	Player    Player
	Obstacles []Obstacle
	Ticks     int // Fixed ticks run so far
	Rows      int // Spawn cycles run so far, including empty rows
	Evicted   int // Obstacles dropped after scrolling out of the world
}

// Simulation owns the whole world: one player, the obstacle set and the
// components that mutate them. All methods are safe for concurrent use;
// a single mutex covers every read-and-mutate of the obstacle set.
type Simulation struct {
	mu sync.Mutex

	cfg        config.ClimberConfig
	player     Player
	obstacles  *ObstacleSet
	engine     *Engine
	spawner    *Spawner
	difficulty *config.DifficultyManager
	base       Physics
	logger     *log.Logger

	tickDur    time.Duration
	maxCatchUp int
	carry      time.Duration

	ticks   int
	rows    int
	evicted int
}

// NewSimulation builds a world from the grid and config.
func NewSimulation(opts Options) *Simulation {
	cfg := opts.Config
	grid := opts.Grid
	if grid == nil {
		grid = DefaultGrid()
	}

	obstacles := ToObstacles(grid, cfg.World.CellWidth, cfg.World.CellHeight)

	// Start one cell above the first grid cell, falling onto the layout
	startY := 0.0
	if obstacles.Len() > 0 {
		first := obstacles.At(0).Box
		startY = first.Y - first.H
	}

	ph := PhysicsFromConfig(cfg.Physics)
	maxCatchUp := cfg.Physics.MaxCatchUp
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}

	return &Simulation{
		cfg:       cfg,
		player:    NewPlayer(cfg.Player.StartX, startY, cfg.Player.Width, cfg.Player.Height),
		obstacles: obstacles,
		engine:    NewEngine(ph, opts.Logger),
		spawner: NewSpawner(opts.Seed, cfg.Spawner.Lanes,
			cfg.World.CellWidth, cfg.World.CellHeight, cfg.Spawner.SpawnY, opts.Logger),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		base:       ph,
		logger:     opts.Logger,
		tickDur:    cfg.Physics.TickDuration(),
		maxCatchUp: maxCatchUp,
	}
}

// Apply feeds one intent to the player.
func (s *Simulation) Apply(in Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.Apply(in)
}

// Step runs exactly one fixed tick.
func (s *Simulation) Step() TickReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *Simulation) stepLocked() TickReport {
	s.engine.Physics.ScrollSpeed = s.difficulty.ScrollSpeed(s.base.ScrollSpeed, s.ticks)

	report := s.engine.Tick(&s.player, s.obstacles)
	s.ticks++

	if s.cfg.World.EvictOffscreen {
		s.evictLocked()
	}
	return report
}

// Advance runs as many fixed ticks as fit in the elapsed host time and
// carries the remainder to the next call. If the host fell behind by more
// than the catch-up limit, the excess time is dropped.
// Returns the number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elapsed < 0 {
		elapsed = 0
	}
	s.carry += elapsed

	n := int(s.carry / s.tickDur)
	if n > s.maxCatchUp {
		if s.logger != nil {
			s.logger.Debug("dropping ticks", "wanted", n, "ran", s.maxCatchUp)
		}
		n = s.maxCatchUp
		s.carry = 0
	} else {
		s.carry -= time.Duration(n) * s.tickDur
	}

	for range n {
		s.stepLocked()
	}
	return n
}

// Spawn runs one spawner cycle. Returns the row size.
func (s *Simulation) Spawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows++
	return s.spawner.Spawn(s.obstacles)
}

// SpawnN places a row of exactly n segments.
func (s *Simulation) SpawnN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows++
	return s.spawner.SpawnN(s.obstacles, n)
}

// Evict drops obstacles that scrolled past the bottom of the world.
// Step calls this automatically when world.evict_offscreen is set.
func (s *Simulation) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked()
}

func (s *Simulation) evictLocked() int {
	n := s.obstacles.EvictBelow(s.cfg.World.Height)
	s.evicted += n
	return n
}

// SpawnInterval returns the current wall-clock spawn period.
func (s *Simulation) SpawnInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty.SpawnInterval(s.cfg.Spawner.Interval, s.ticks)
}

// TickDuration returns the fixed tick length.
func (s *Simulation) TickDuration() time.Duration {
	return s.tickDur
}

// SetPhysics replaces the physics constants without resetting the world.
func (s *Simulation) SetPhysics(ph Physics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = ph
	s.engine.Physics = ph
}

// Retune swaps in the physics, spawn interval and difficulty settings of
// cfg without resetting the world. World size, lanes, player size and
// tick length only change on a new Simulation.
func (s *Simulation) Retune(cfg config.ClimberConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ph := PhysicsFromConfig(cfg.Physics)
	s.base = ph
	s.engine.Physics = ph

	s.cfg.Physics = cfg.Physics
	s.cfg.Spawner.Interval = cfg.Spawner.Interval
	s.cfg.Difficulty = cfg.Difficulty
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Player returns a copy of the player state.
func (s *Simulation) Player() Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// Snapshot copies the world state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	obstacles := make([]Obstacle, s.obstacles.Len())
	copy(obstacles, s.obstacles.All())
	return Snapshot{
		Player:    s.player,
		Obstacles: obstacles,
		Ticks:     s.ticks,
		Rows:      s.rows,
		Evicted:   s.evicted,
	}
}

// World returns the playfield size in world units.
func (s *Simulation) World() (width, height float64) {
	return s.cfg.World.Width, s.cfg.World.Height
}

// SpawnClock turns wall-clock deltas into spawn cycles for hosts without
// their own periodic timer.
type SpawnClock struct {
	Interval time.Duration
	acc      time.Duration
}

// Due adds elapsed time and returns how many intervals have passed.
func (c *SpawnClock) Due(elapsed time.Duration) int {
	if c.Interval <= 0 || elapsed < 0 {
		return 0
	}
	c.acc += elapsed
	n := int(c.acc / c.Interval)
	c.acc -= time.Duration(n) * c.Interval
	return n
}

// Reset clears accumulated time.
func (c *SpawnClock) Reset() {
	c.acc = 0
}
