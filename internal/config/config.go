// Package config provides YAML-based game configuration loading and
// difficulty management for the climber.
package config

import "time"

// ClimberConfig contains all configuration for the platformer.
type ClimberConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity each tick
	JumpFactor  float64 `yaml:"jump_factor"`  // Jump velocity = gravity * jump_factor
	JumpNudge   float64 `yaml:"jump_nudge"`   // Upward lift applied on the jump tick
	GroundedVY  float64 `yaml:"grounded_vy"`  // Velocity assigned after a vertical contact
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal units per tick
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle descent per tick
	TickRate    int     `yaml:"tick_rate"`    // Fixed simulation ticks per second
	MaxCatchUp  int     `yaml:"max_catch_up"` // Max ticks run for one host frame
}

// WorldConfig defines the playfield and its obstacle grid.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CellWidth      float64 `yaml:"cell_width"`
	CellHeight     float64 `yaml:"cell_height"`
	EvictOffscreen bool    `yaml:"evict_offscreen"` // Drop obstacles that scrolled past the bottom
}

// PlayerConfig defines the player's hitbox and start column.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnerConfig defines platform row generation.
type SpawnerConfig struct {
	Lanes    int           `yaml:"lanes"`
	SpawnY   float64       `yaml:"spawn_y"`
	Interval time.Duration `yaml:"interval"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to scroll speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// TickDuration returns the length of one fixed simulation tick.
func (p PhysicsConfig) TickDuration() time.Duration {
	rate := p.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
