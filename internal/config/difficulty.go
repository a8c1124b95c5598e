package config

import "math"

// Progression types
const (
	ProgressScore = "score" // Level grows with score
	ProgressTime  = "time"  // Level grows with elapsed ticks
	ProgressNone  = "none"
)

// DifficultyManager turns score and elapsed ticks into a level in [0, 1]
// and scales spawn, speed and fire parameters by it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level rises during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level interpolates from the initial level to 1 as the run progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = score
	case ProgressTime:
		done = ticks
	default:
		return d.start
	}

	p := unit(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.start + p*(1-d.start)
}

// SpeedFactor is the multiplier on enemy forward speed.
func (d *DifficultyManager) SpeedFactor(score, ticks int) float64 {
	return 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// SpawnInterval shortens base as the level rises. The result never drops
// below a quarter of base or one tick.
func (d *DifficultyManager) SpawnInterval(base, score, ticks int) int {
	return d.shorten(base, d.cfg.Scaling.SpawnReduction, score, ticks)
}

// FireCooldown shortens the enemy fire cooldown the same way.
func (d *DifficultyManager) FireCooldown(base, score, ticks int) int {
	return d.shorten(base, d.cfg.Scaling.CooldownFraction, score, ticks)
}

func (d *DifficultyManager) shorten(base int, fraction float64, score, ticks int) int {
	cut := d.Level(score, ticks) * min(max(fraction, 0), 0.75)
	return max(int(math.Round(float64(base)*(1-cut))), base/4, 1)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
