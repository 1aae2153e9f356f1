package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCrossingConfigMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree on the
	// values the simulation depends on.
	fromYAML, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}
	hard := DefaultCrossingConfig()

	if fromYAML.Board != hard.Board {
		t.Errorf("board mismatch: yaml=%+v hardcoded=%+v", fromYAML.Board, hard.Board)
	}
	if fromYAML.Player != hard.Player {
		t.Errorf("player mismatch: yaml=%+v hardcoded=%+v", fromYAML.Player, hard.Player)
	}
	if fromYAML.Enemies != hard.Enemies {
		t.Errorf("enemies mismatch: yaml=%+v hardcoded=%+v", fromYAML.Enemies, hard.Enemies)
	}
	if fromYAML.Gameplay != hard.Gameplay {
		t.Errorf("gameplay mismatch: yaml=%+v hardcoded=%+v", fromYAML.Gameplay, hard.Gameplay)
	}
}

func TestDefaultCrossingConfigGeometry(t *testing.T) {
	cfg := DefaultCrossingConfig()

	if cfg.Board.Columns*cfg.Board.TileWidth != cfg.Board.CanvasWidth {
		t.Errorf("canvas width %d does not match %d columns of %d",
			cfg.Board.CanvasWidth, cfg.Board.Columns, cfg.Board.TileWidth)
	}
	if cfg.Board.Rows != 6 {
		t.Errorf("Rows = %d, expected 6", cfg.Board.Rows)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if cfg.Enemies.MinSpeed >= cfg.Enemies.MaxSpeed {
		t.Errorf("speed band [%f, %f) is empty", cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed)
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crossing.yaml")
	data := []byte("gameplay:\n  lives: 3\n  gem_value: 50\n  crossing_value: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing(%s) error = %v", path, err)
	}
	if cfg.Gameplay.GemValue != 50 {
		t.Errorf("GemValue = %d, expected 50", cfg.Gameplay.GemValue)
	}

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCrossing with missing custom path should fail")
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		count     int
		livesKept bool
	}{
		{DifficultyEasy, true, 3, true},
		{DifficultyNormal, true, 3, true},
		{DifficultyHard, true, 4, true},
		{DifficultyFixed, false, 3, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			ApplyCrossingPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Enemies.Count != tc.count {
				t.Errorf("Count = %d, expected %d", cfg.Enemies.Count, tc.count)
			}
			if cfg.Gameplay.Lives != 3 {
				t.Errorf("Lives = %d, presets must not change the heart bank", cfg.Gameplay.Lives)
			}
		})
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0.0 {
		t.Errorf("Level(0) = %f, expected 0.0", got)
	}
	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %f, expected 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %f, expected clamp to 1.0", got)
	}

	// Speed scales with level
	base := 200.0
	if got := dm.Speed(base, 0, 0); got != base {
		t.Errorf("Speed at level 0 = %f, expected base %f", got, base)
	}
	if got := dm.Speed(base, 100, 0); got != base*1.5 {
		t.Errorf("Speed at max level = %f, expected %f", got, base*1.5)
	}

	dm.SetEnabled(false)
	if got := dm.Level(50, 0); got != 0.0 {
		t.Errorf("Level with progression disabled = %f, expected initial 0.0", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("crossing")) == 0 {
		t.Error("GetDefaultYAML(\"crossing\") should return embedded bytes")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML for unknown game should be nil")
	}
}
