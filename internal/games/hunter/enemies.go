package hunter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
)

// Enemy is a hostile car driving down the road toward the player.
type Enemy struct {
	Pos             core.Vec3
	Speed           float64 // Forward speed along +z
	HorizontalSpeed float64
	Direction       float64 // -1 or +1
	Timer           int     // Ticks until the next wander decision
	TargetX         float64
	LastShot        int // Tick of the last shot, or the spawn tick
	Destroyed       bool
}

// EnemyManager handles spawning, wandering and removal of enemies.
type EnemyManager struct {
	Enemies   []*Enemy
	NextSpawn int // Ticks until the next spawn

	cfg        config.EnemyConfig
	edge       float64
	laneWidth  float64 // Span available for spawn and retarget positions
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewEnemyManager creates a manager using the shared game RNG.
func NewEnemyManager(cfg config.HunterConfig, rng *rand.Rand, diff *config.DifficultyManager) *EnemyManager {
	em := &EnemyManager{
		Enemies:    make([]*Enemy, 0, 16),
		cfg:        cfg.Enemies,
		edge:       cfg.Road.Edge(),
		laneWidth:  cfg.Road.Width - 2*cfg.Enemies.SpawnMargin,
		rng:        rng,
		difficulty: diff,
	}
	return em
}

// Reset removes all enemies. The first spawn happens when play starts.
func (em *EnemyManager) Reset() {
	em.Enemies = em.Enemies[:0]
	em.NextSpawn = 0
}

func (em *EnemyManager) randomX() float64 {
	return (em.rng.Float64() - 0.5) * em.laneWidth
}

// Spawn adds an enemy at the far end of the road.
func (em *EnemyManager) Spawn(tick, score int) *Enemy {
	x := em.randomX()
	dir := 1.0
	if em.rng.Float64() < 0.5 {
		dir = -1
	}
	e := &Enemy{
		Pos:             core.V3(x, 0, em.cfg.SpawnZ),
		Speed:           (em.cfg.BaseSpeed + em.rng.Float64()*em.cfg.SpeedVariation) * em.difficulty.SpeedFactor(score, tick),
		HorizontalSpeed: (em.rng.Float64()-0.5)*em.cfg.HorizontalVariation + em.cfg.HorizontalSpeed,
		Direction:       dir,
		Timer:           randIntn(em.rng, em.cfg.InitialTimerMax),
		TargetX:         x,
		LastShot:        tick,
	}
	em.Enemies = append(em.Enemies, e)
	return e
}

// Update runs the spawn timer and moves every enemy.
func (em *EnemyManager) Update(tick, score int) {
	em.NextSpawn--
	if em.NextSpawn <= 0 {
		em.Spawn(tick, score)
		span := em.cfg.SpawnIntervalMax - em.cfg.SpawnIntervalMin
		em.NextSpawn = em.difficulty.SpawnInterval(em.cfg.SpawnIntervalMin+randIntn(em.rng, span), score, tick)
	}

	kept := em.Enemies[:0]
	for _, e := range em.Enemies {
		em.move(e)
		if e.Pos.Z <= em.cfg.DespawnZ {
			kept = append(kept, e)
		}
	}
	em.Enemies = kept
}

// move advances one enemy: forward drive, wander decision, steering toward its target.
func (em *EnemyManager) move(e *Enemy) {
	e.Pos.Z += e.Speed

	e.Timer--
	if e.Timer <= 0 {
		if em.rng.Float64() < em.cfg.FlipChance {
			e.Direction = -e.Direction
			e.TargetX = core.Clamp(e.TargetX+e.Direction*em.cfg.LaneStep, -em.laneWidth/2, em.laneWidth/2)
		}
		if em.rng.Float64() < em.cfg.RetargetChance {
			e.TargetX = em.randomX()
		}
		e.Timer = em.cfg.TimerMin + randIntn(em.rng, em.cfg.TimerVariation)
	}

	dx := e.TargetX - e.Pos.X
	if math.Abs(dx) > em.cfg.ArriveTolerance {
		e.Pos.X += core.Sign(dx) * e.HorizontalSpeed
	}
	e.Pos.X = core.Clamp(e.Pos.X, -em.edge, em.edge)
}

// ReadyToFire returns enemies that may shoot at target this tick and marks them as having fired.
func (em *EnemyManager) ReadyToFire(target core.Vec3, tick, score int) []*Enemy {
	if !em.cfg.FireEnabled {
		return nil
	}
	cooldown := em.difficulty.FireCooldown(em.cfg.FireCooldown, score, tick)

	var shooters []*Enemy
	for _, e := range em.Enemies {
		ahead := target.Z - e.Pos.Z
		if ahead <= 0 || ahead > em.cfg.FireRange {
			continue
		}
		if tick-e.LastShot < cooldown {
			continue
		}
		e.LastShot = tick
		shooters = append(shooters, e)
	}
	return shooters
}

// Nearest returns the closest live enemy ahead of pos, or nil.
func (em *EnemyManager) Nearest(pos core.Vec3) *Enemy {
	var best *Enemy
	bestDist := math.MaxFloat64
	for _, e := range em.Enemies {
		if e.Destroyed || e.Pos.Z >= pos.Z {
			continue
		}
		if d := pos.DistanceTo(e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Sweep removes destroyed enemies.
func (em *EnemyManager) Sweep() {
	kept := em.Enemies[:0]
	for _, e := range em.Enemies {
		if !e.Destroyed {
			kept = append(kept, e)
		}
	}
	em.Enemies = kept
}
