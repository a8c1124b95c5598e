// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// HunterConfig contains all tunables for Road Hunter.
// Distances are world units, speeds are units per tick, durations are ticks.
type HunterConfig struct {
	Road        RoadConfig       `yaml:"road"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Buildings   BuildingConfig   `yaml:"buildings"`
	PowerUps    PowerUpConfig    `yaml:"powerups"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the road surface and its scroll speeds.
type RoadConfig struct {
	Width         float64 `yaml:"width"`
	EdgeMargin    float64 `yaml:"edge_margin"`
	BaseSpeed     float64 `yaml:"base_speed"`
	BoostSpeed    float64 `yaml:"boost_speed"`
	BrakeSpeed    float64 `yaml:"brake_speed"`
	Segments      int     `yaml:"segments"`
	SegmentLength float64 `yaml:"segment_length"`
	RecycleAt     float64 `yaml:"recycle_at"` // Segments past this z wrap to the back
}

// Edge returns the maximum |x| an entity may occupy.
func (r RoadConfig) Edge() float64 {
	return r.Width/2 - r.EdgeMargin
}

// PlayerConfig defines the player vehicle's movement envelope.
type PlayerConfig struct {
	Health          int     `yaml:"health"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	VerticalSpeed   float64 `yaml:"vertical_speed"`
	ForwardSpeed    float64 `yaml:"forward_speed"`
	MaxForward      float64 `yaml:"max_forward"`  // Largest z (furthest back)
	MaxBackward     float64 `yaml:"max_backward"` // Smallest z (furthest ahead)
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
}

// EnemyConfig defines enemy spawning, wandering and firing.
type EnemyConfig struct {
	SpawnZ              float64 `yaml:"spawn_z"`
	DespawnZ            float64 `yaml:"despawn_z"`
	SpawnMargin         float64 `yaml:"spawn_margin"` // Kept clear on each side when picking x
	BaseSpeed           float64 `yaml:"base_speed"`
	SpeedVariation      float64 `yaml:"speed_variation"`
	HorizontalSpeed     float64 `yaml:"horizontal_speed"`
	HorizontalVariation float64 `yaml:"horizontal_variation"`
	SpawnIntervalMin    int     `yaml:"spawn_interval_min"`
	SpawnIntervalMax    int     `yaml:"spawn_interval_max"`
	InitialTimerMax     int     `yaml:"initial_timer_max"`
	TimerMin            int     `yaml:"timer_min"`
	TimerVariation      int     `yaml:"timer_variation"`
	FlipChance          float64 `yaml:"flip_chance"`
	RetargetChance      float64 `yaml:"retarget_chance"`
	LaneStep            float64 `yaml:"lane_step"`
	ArriveTolerance     float64 `yaml:"arrive_tolerance"`
	FireEnabled         bool    `yaml:"fire_enabled"`
	FireCooldown        int     `yaml:"fire_cooldown"`
	FireRange           float64 `yaml:"fire_range"`
}

// ProjectileConfig defines shots and hit detection.
type ProjectileConfig struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	SpawnHeight   float64 `yaml:"spawn_height"`
	MinZ          float64 `yaml:"min_z"`
	MaxZ          float64 `yaml:"max_z"`
	HitRadius     float64 `yaml:"hit_radius"`
	RamDamage     int     `yaml:"ram_damage"`
	EnemyShotDmg  int     `yaml:"enemy_shot_damage"`
	ExplosionTTL  int     `yaml:"explosion_ttl"`
	HomingTurn    float64 `yaml:"homing_turn"`
	SpreadDrift   float64 `yaml:"spread_drift"`
	RapidCooldown int     `yaml:"rapid_cooldown"`
}

// BuildingConfig defines roadside scenery placement and recycling.
type BuildingConfig struct {
	Count         int     `yaml:"count"`
	SideOffset    float64 `yaml:"side_offset"`
	SpawnDistance float64 `yaml:"spawn_distance"`
	RecycleAt     float64 `yaml:"recycle_at"`
	MinDistance   float64 `yaml:"min_distance"`
	Padding       float64 `yaml:"padding"`
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
}

// PowerUpConfig defines power-up spawning and effect duration.
type PowerUpConfig struct {
	Enabled          bool    `yaml:"enabled"`
	SpawnIntervalMin int     `yaml:"spawn_interval_min"`
	SpawnIntervalMax int     `yaml:"spawn_interval_max"`
	DropChance       float64 `yaml:"drop_chance"`
	Duration         int     `yaml:"duration"`
	PulseSpeed       float64 `yaml:"pulse_speed"`
	PulseMin         float64 `yaml:"pulse_min"`
	PulseMax         float64 `yaml:"pulse_max"`
}

// ScoringConfig defines how score accumulates.
type ScoringConfig struct {
	PerTick float64 `yaml:"per_tick"`
	PerKill int     `yaml:"per_kill"`
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
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to enemy speed factor at max difficulty
	SpawnReduction   float64 `yaml:"spawn_reduction"`   // Fraction of spawn interval removed at max difficulty
	CooldownFraction float64 `yaml:"cooldown_fraction"` // Fraction of enemy fire cooldown removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield "" which leaves the config untouched.
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
