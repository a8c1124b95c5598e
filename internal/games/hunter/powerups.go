package hunter

import (
	"math/rand"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
)

// PowerUpType identifies a weapon upgrade.
type PowerUpType int

const (
	PowerUpNone      PowerUpType = iota
	PowerUpRapidFire             // Holding fire repeats shots
	PowerUpWideShot              // Three shots in a fan
	PowerUpHoming                // Shots steer toward the nearest enemy
	powerUpCount
)

// String returns the name used in events and the HUD.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpRapidFire:
		return "rapidFire"
	case PowerUpWideShot:
		return "wideShot"
	case PowerUpHoming:
		return "homing"
	default:
		return "none"
	}
}

// Label returns a short display name.
func (t PowerUpType) Label() string {
	switch t {
	case PowerUpRapidFire:
		return "RAPID"
	case PowerUpWideShot:
		return "WIDE"
	case PowerUpHoming:
		return "HOMING"
	default:
		return ""
	}
}

// Glyph returns the display character for a pickup of this type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpRapidFire:
		return 'R'
	case PowerUpWideShot:
		return 'W'
	case PowerUpHoming:
		return 'H'
	default:
		return '?'
	}
}

// Color returns the pickup color.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpRapidFire:
		return core.ColorBrightYellow
	case PowerUpWideShot:
		return core.ColorBrightBlue
	case PowerUpHoming:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// PowerUp is a collectible floating on the road.
type PowerUp struct {
	Pos       core.Vec3
	Type      PowerUpType
	Scale     float64
	PulseDir  float64 // +1 growing, -1 shrinking
	Collected bool
}

// Pulse advances the scale animation, reversing at the bounds.
func (p *PowerUp) Pulse(speed, lo, hi float64) {
	p.Scale += speed * p.PulseDir
	if p.Scale >= hi {
		p.Scale = hi
		p.PulseDir = -1
	} else if p.Scale <= lo {
		p.Scale = lo
		p.PulseDir = 1
	}
}

// PowerUpManager spawns, animates and collects power-ups.
type PowerUpManager struct {
	PowerUps  []*PowerUp
	NextSpawn int // Ticks until the next timed spawn

	cfg     config.PowerUpConfig
	spawnZ  float64
	despawn float64
	width   float64
	rng     *rand.Rand
}

// NewPowerUpManager creates a manager using the shared game RNG.
func NewPowerUpManager(cfg config.HunterConfig, rng *rand.Rand) *PowerUpManager {
	pm := &PowerUpManager{
		cfg:     cfg.PowerUps,
		spawnZ:  cfg.Enemies.SpawnZ,
		despawn: cfg.Enemies.DespawnZ,
		width:   cfg.Road.Width - 2*cfg.Enemies.SpawnMargin,
		rng:     rng,
	}
	pm.Reset()
	return pm
}

// Reset clears pickups and rearms the spawn timer.
func (pm *PowerUpManager) Reset() {
	pm.PowerUps = pm.PowerUps[:0]
	pm.NextSpawn = pm.interval()
}

func (pm *PowerUpManager) interval() int {
	return pm.cfg.SpawnIntervalMin + randIntn(pm.rng, pm.cfg.SpawnIntervalMax-pm.cfg.SpawnIntervalMin)
}

func (pm *PowerUpManager) rollType() PowerUpType {
	return PowerUpType(1 + pm.rng.Intn(int(powerUpCount)-1))
}

// Spawn places a power-up of a random type at pos.
func (pm *PowerUpManager) Spawn(pos core.Vec3) *PowerUp {
	p := &PowerUp{Pos: pos, Type: pm.rollType(), Scale: 1, PulseDir: 1}
	pm.PowerUps = append(pm.PowerUps, p)
	return p
}

// TryDrop rolls the drop chance for a destroyed enemy at pos.
func (pm *PowerUpManager) TryDrop(pos core.Vec3) bool {
	if !pm.cfg.Enabled || pm.rng.Float64() >= pm.cfg.DropChance {
		return false
	}
	pos.Y = 0
	pm.Spawn(pos)
	return true
}

// Update runs the spawn timer, scrolls and pulses pickups, and drops the ones behind the player.
func (pm *PowerUpManager) Update(roadSpeed float64) {
	if !pm.cfg.Enabled {
		return
	}

	pm.NextSpawn--
	if pm.NextSpawn <= 0 {
		x := (pm.rng.Float64() - 0.5) * pm.width
		pm.Spawn(core.V3(x, 0, pm.spawnZ))
		pm.NextSpawn = pm.interval()
	}

	kept := pm.PowerUps[:0]
	for _, p := range pm.PowerUps {
		if p.Collected {
			continue
		}
		p.Pos.Z += roadSpeed
		p.Pulse(pm.cfg.PulseSpeed, pm.cfg.PulseMin, pm.cfg.PulseMax)
		if p.Pos.Z <= pm.despawn {
			kept = append(kept, p)
		}
	}
	pm.PowerUps = kept
}

// Sweep removes collected pickups.
func (pm *PowerUpManager) Sweep() {
	kept := pm.PowerUps[:0]
	for _, p := range pm.PowerUps {
		if !p.Collected {
			kept = append(kept, p)
		}
	}
	pm.PowerUps = kept
}
