// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Gem        GemConfig        `yaml:"gem"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the logical playfield grid. All entity positions
// and motion are expressed in this pixel space; the renderer scales it
// down to terminal cells.
type BoardConfig struct {
	Columns      int `yaml:"columns"`
	Rows         int `yaml:"rows"`
	TileWidth    int `yaml:"tile_width"`
	TileHeight   int `yaml:"tile_height"`
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
}

// PlayerConfig defines player sprite geometry and movement.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
	StepX  int `yaml:"step_x"`
	StepY  int `yaml:"step_y"`
}

// EnemyConfig defines enemy geometry, count and the speed band enemies
// are randomized within.
type EnemyConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Count       int     `yaml:"count"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	RespawnEdge float64 `yaml:"respawn_edge"`
}

// GemConfig defines collectible geometry.
type GemConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	GemValue      int `yaml:"gem_value"`
	CrossingValue int `yaml:"crossing_value"`
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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
