package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads crossing game configuration.
// Search order: customPath -> ~/.bugcross/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
func LoadCrossing(customPath string) (CrossingConfig, error) {
	var cfg CrossingConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crossing.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bugcross", "configs", filename)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Lives are intentionally not touched: the game always starts with a
// full three-heart bank regardless of preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the enemy speed band and count based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.MinSpeed = 80
		cfg.Enemies.MaxSpeed = 280
	case DifficultyHard:
		cfg.Enemies.MinSpeed = 150
		cfg.Enemies.MaxSpeed = 500
		cfg.Enemies.Count = 4
	}
}
