package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultClimberConfig returns the default platformer configuration.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		Physics: PhysicsConfig{
			Gravity:     0.1,
			JumpFactor:  -35,
			JumpNudge:   1,
			GroundedVY:  0.8,
			MoveSpeed:   2,
			ScrollSpeed: 0.5,
			TickRate:    60,
			MaxCatchUp:  8,
		},
		World: WorldConfig{
			Width:          300,
			Height:         580,
			CellWidth:      60,
			CellHeight:     20,
			EvictOffscreen: true,
		},
		Player: PlayerConfig{
			StartX: 10,
			Width:  10,
			Height: 10,
		},
		Spawner: SpawnerConfig{
			Lanes:    5,
			SpawnY:   20,
			Interval: time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultClimberYAML
}
