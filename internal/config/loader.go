package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "hunter.yaml"

// LoadHunter loads Road Hunter configuration.
// Search order: customPath -> ~/.roadhunter/configs/hunter.yaml -> ./configs/hunter.yaml -> embedded default.
// Only an explicit customPath produces an error; implicit locations fall through.
func LoadHunter(customPath string) (HunterConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HunterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HunterConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultHunterYAML)
	if err != nil {
		return DefaultHunterConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file
// only overrides the keys it names, and validates the result.
func Parse(data []byte) (HunterConfig, error) {
	cfg := DefaultHunterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HunterConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HunterConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg HunterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the simulation depends on.
func (c HunterConfig) Validate() error {
	switch {
	case c.Road.Edge() <= 0:
		return fmt.Errorf("%w: road width %.1f leaves no drivable area", ErrInvalid, c.Road.Width)
	case c.Road.Segments <= 0 || c.Road.SegmentLength <= 0:
		return fmt.Errorf("%w: road needs at least one segment", ErrInvalid)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	case c.Player.MaxBackward > c.Player.MaxForward:
		return fmt.Errorf("%w: player max_backward exceeds max_forward", ErrInvalid)
	case c.Player.MinHeight > c.Player.MaxHeight:
		return fmt.Errorf("%w: player min_height exceeds max_height", ErrInvalid)
	case c.Enemies.SpawnIntervalMin <= 0 || c.Enemies.SpawnIntervalMax < c.Enemies.SpawnIntervalMin:
		return fmt.Errorf("%w: enemy spawn interval [%d, %d]", ErrInvalid, c.Enemies.SpawnIntervalMin, c.Enemies.SpawnIntervalMax)
	case c.Enemies.SpawnMargin*2 >= c.Road.Width:
		return fmt.Errorf("%w: enemy spawn margin leaves no room", ErrInvalid)
	case c.Projectiles.HitRadius <= 0:
		return fmt.Errorf("%w: hit radius must be positive", ErrInvalid)
	case c.Buildings.MinSize <= 0 || c.Buildings.MaxSize < c.Buildings.MinSize:
		return fmt.Errorf("%w: building size range", ErrInvalid)
	case c.PowerUps.Enabled && (c.PowerUps.SpawnIntervalMin <= 0 || c.PowerUps.SpawnIntervalMax < c.PowerUps.SpawnIntervalMin):
		return fmt.Errorf("%w: power-up spawn interval", ErrInvalid)
	case c.PowerUps.PulseMin > c.PowerUps.PulseMax:
		return fmt.Errorf("%w: power-up pulse range", ErrInvalid)
	case c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 1:
		return fmt.Errorf("%w: power-up drop chance %.2f outside [0, 1]", ErrInvalid, c.PowerUps.DropChance)
	case c.PowerUps.Enabled && c.PowerUps.Duration <= 0:
		return fmt.Errorf("%w: power-up duration must be positive", ErrInvalid)
	case c.Buildings.Count < 0:
		return fmt.Errorf("%w: building count %d is negative", ErrInvalid, c.Buildings.Count)
	case c.Buildings.MinHeight > c.Buildings.MaxHeight:
		return fmt.Errorf("%w: building height range", ErrInvalid)
	case c.Buildings.SpawnDistance <= c.Buildings.MinDistance:
		return fmt.Errorf("%w: building spawn_distance must exceed min_distance", ErrInvalid)
	case c.Enemies.InitialTimerMax < 0 || c.Enemies.TimerMin < 0 || c.Enemies.TimerVariation < 0:
		return fmt.Errorf("%w: enemy direction timers must not be negative", ErrInvalid)
	case c.Enemies.FireCooldown < 0:
		return fmt.Errorf("%w: enemy fire cooldown is negative", ErrInvalid)
	case c.Projectiles.ExplosionTTL <= 0:
		return fmt.Errorf("%w: explosion ttl must be positive", ErrInvalid)
	case c.Projectiles.RapidCooldown <= 0:
		return fmt.Errorf("%w: rapid fire cooldown must be positive", ErrInvalid)
	case c.Projectiles.MinZ >= c.Projectiles.MaxZ:
		return fmt.Errorf("%w: projectile z bounds", ErrInvalid)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: initial level %.2f outside [0, 1]", ErrInvalid, c.Difficulty.InitialLevel)
	case c.Difficulty.Scaling.SpeedMultiplier < 0 || c.Difficulty.Scaling.SpawnReduction < 0 || c.Difficulty.Scaling.CooldownFraction < 0:
		return fmt.Errorf("%w: difficulty scaling must not be negative", ErrInvalid)
	}

	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone:
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadhunter", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HunterConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 150
		cfg.Projectiles.RamDamage = 15
	case DifficultyHard:
		cfg.Player.Health = 80
		cfg.Enemies.FireCooldown = 60
	}
}

// ApplyClassic turns the config into the original arcade rules:
// no power-ups, enemies that never shoot, and a level that stays where
// the preset put it. Apply it after ApplyPreset.
func ApplyClassic(cfg *HunterConfig) {
	cfg.PowerUps.Enabled = false
	cfg.Enemies.FireEnabled = false
	cfg.Difficulty.Enabled = false
}
