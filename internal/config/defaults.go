package config

import (
	_ "embed"
)

//go:embed defaults/hunter.yaml
var defaultHunterYAML []byte

// DefaultHunterConfig returns the built-in Road Hunter configuration.
// It mirrors defaults/hunter.yaml and is used if the embedded file fails to parse.
func DefaultHunterConfig() HunterConfig {
	return HunterConfig{
		Road: RoadConfig{
			Width:         20,
			EdgeMargin:    1,
			BaseSpeed:     0.5,
			BoostSpeed:    0.7,
			BrakeSpeed:    0.3,
			Segments:      5,
			SegmentLength: 100,
			RecycleAt:     100,
		},
		Player: PlayerConfig{
			Health:          100,
			HorizontalSpeed: 0.1,
			VerticalSpeed:   0.1,
			ForwardSpeed:    0.1,
			MaxForward:      10,
			MaxBackward:     0,
			MinHeight:       0,
			MaxHeight:       5,
		},
		Enemies: EnemyConfig{
			SpawnZ:              -200,
			DespawnZ:            50,
			SpawnMargin:         2,
			BaseSpeed:           0.15,
			SpeedVariation:      0.1,
			HorizontalSpeed:     0.05,
			HorizontalVariation: 0.03,
			SpawnIntervalMin:    120, // 2 seconds
			SpawnIntervalMax:    300, // 5 seconds
			InitialTimerMax:     100,
			TimerMin:            50,
			TimerVariation:      100,
			FlipChance:          0.3,
			RetargetChance:      0.2,
			LaneStep:            4,
			ArriveTolerance:     0.1,
			FireEnabled:         true,
			FireCooldown:        90,
			FireRange:           80,
		},
		Projectiles: ProjectileConfig{
			PlayerSpeed:   0.5,
			EnemySpeed:    0.6,
			SpawnHeight:   1,
			MinZ:          -200,
			MaxZ:          50,
			HitRadius:     2,
			RamDamage:     20,
			EnemyShotDmg:  10,
			ExplosionTTL:  30,
			HomingTurn:    0.05,
			SpreadDrift:   0.15,
			RapidCooldown: 6,
		},
		Buildings: BuildingConfig{
			Count:         20,
			SideOffset:    15,
			SpawnDistance: 400,
			RecycleAt:     200,
			MinDistance:   100,
			Padding:       2,
			MinSize:       3,
			MaxSize:       7,
			MinHeight:     5,
			MaxHeight:     15,
		},
		PowerUps: PowerUpConfig{
			Enabled:          true,
			SpawnIntervalMin: 600,
			SpawnIntervalMax: 900,
			DropChance:       0.15,
			Duration:         600, // 10 seconds
			PulseSpeed:       0.05,
			PulseMin:         0.8,
			PulseMax:         1.2,
		},
		Scoring: ScoringConfig{
			PerTick: 0.1,
			PerKill: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				SpawnReduction:   0.5,
				CooldownFraction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHunterYAML
}
