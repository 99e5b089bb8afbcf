package config

import (
	"math"
	"time"
)

// minSpawnInterval keeps rows from spawning on top of each other.
const minSpawnInterval = 200 * time.Millisecond

// DifficultyManager calculates dynamic game parameters based on elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on ticks.
func (d *DifficultyManager) Level(ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	if d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(ticks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ScrollSpeed returns the obstacle scroll speed for the current level.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) ScrollSpeed(base float64, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the spawn period for the current level.
func (d *DifficultyManager) SpawnInterval(base time.Duration, ticks int) time.Duration {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(ticks)
	reduction := clampF(level*d.cfg.Scaling.IntervalReduction, 0.0, 1.0)
	result := time.Duration(float64(base) * (1.0 - reduction))
	if result < minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
