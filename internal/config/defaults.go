package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing game configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Columns:      5,
			Rows:         6,
			TileWidth:    101,
			TileHeight:   83,
			CanvasWidth:  505,
			CanvasHeight: 606,
		},
		Player: PlayerConfig{
			Width:  101,
			Height: 171,
			SpawnX: 203,
			SpawnY: 391,
			StepX:  101,
			StepY:  83,
		},
		Enemies: EnemyConfig{
			Width:       101,
			Height:      171,
			Count:       3,
			MinSpeed:    100,
			MaxSpeed:    400,
			RespawnEdge: 500,
		},
		Gem: GemConfig{
			Width:  101,
			Height: 83,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			GemValue:      30,
			CrossingValue: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
