package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "climber.yaml"

// LoadClimber loads the platformer configuration.
// Search order: customPath -> ~/.climber/configs/climber.yaml -> ./configs/climber.yaml -> embedded default
//
// Files are decoded on top of the hardcoded defaults, so a partial file only
// overrides the keys it names.
func LoadClimber(customPath string) (ClimberConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultClimberConfig()
	if err := yaml.Unmarshal(defaultClimberYAML, &cfg); err != nil {
		return DefaultClimberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// SearchPath returns the file LoadClimber would read, or "" when only the
// embedded default applies.
func SearchPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadFile reads a single config file over the defaults.
func LoadFile(path string) (ClimberConfig, error) {
	cfg := DefaultClimberConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".climber", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
