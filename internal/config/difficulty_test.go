package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.8, SpawnReduction: 0.5, CooldownFraction: 0.4},
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression.Type = "time"
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(999999, 250); got != 0.25 {
		t.Errorf("time progression should ignore score, got %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled level = %v, want initial 0.3", got)
	}
}

func TestDifficultyInitialLevelInterpolation(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(500, 0); got != 0.75 {
		t.Errorf("Level = %v, want 0.75", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(testDifficulty())

	if got := dm.SpeedFactor(0, 0); got != 1 {
		t.Errorf("SpeedFactor at zero = %v", got)
	}
	if got := dm.SpeedFactor(1000, 0); math.Abs(got-1.8) > 1e-9 {
		t.Errorf("SpeedFactor at max = %v, want 1.8", got)
	}
	if got := dm.SpawnInterval(200, 0, 0); got != 200 {
		t.Errorf("SpawnInterval at zero = %d", got)
	}
	if got := dm.SpawnInterval(200, 1000, 0); got != 100 {
		t.Errorf("SpawnInterval at max = %d, want 100", got)
	}
	if got := dm.FireCooldown(90, 1000, 0); got != 54 {
		t.Errorf("FireCooldown at max = %d, want 54", got)
	}
	if got := dm.SpawnInterval(1, 1000, 0); got != 1 {
		t.Errorf("SpawnInterval should never drop below 1, got %d", got)
	}
}
