package hunter

import (
	"github.com/vovakirdan/roadhunter/internal/core"
)

// Explosion is a short-lived marker where something was destroyed.
type Explosion struct {
	Pos core.Vec3
	Age int
	TTL int
}

// Progress returns how far the explosion has burned, from 0 to 1.
func (e *Explosion) Progress() float64 {
	if e.TTL <= 0 {
		return 1
	}
	return float64(e.Age) / float64(e.TTL)
}

func (g *Game) explode(pos core.Vec3) {
	g.explosions = append(g.explosions, &Explosion{Pos: pos, TTL: g.cfg.Projectiles.ExplosionTTL})
	g.emit(core.EventExplosion, "")
}

// updateExplosions ages explosions and scrolls them with the road.
func (g *Game) updateExplosions() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		e.Age++
		e.Pos.Z += g.roadSpeed
		if e.Age < e.TTL {
			kept = append(kept, e)
		}
	}
	g.explosions = kept
}

// checkCollisions resolves every contact for this tick.
// Hits are marked first and removed afterwards so no slice is mutated while scanned.
func (g *Game) checkCollisions() {
	radius := g.cfg.Projectiles.HitRadius
	player := g.player

	// Player shots against enemies: each shot and each enemy is consumed at most once.
	for _, p := range g.projectiles {
		if p.Owner != OwnerPlayer || p.Spent {
			continue
		}
		for _, e := range g.enemies.Enemies {
			if e.Destroyed || !p.Pos.Within(e.Pos, radius) {
				continue
			}
			p.Spent = true
			e.Destroyed = true
			g.score += float64(g.cfg.Scoring.PerKill)
			g.explode(e.Pos)
			g.powerups.TryDrop(e.Pos)
			break
		}
	}

	// Enemies ramming the player.
	for _, e := range g.enemies.Enemies {
		if e.Destroyed || !player.Pos.Within(e.Pos, radius) {
			continue
		}
		e.Destroyed = true
		g.explode(e.Pos)
		g.hitPlayer(g.cfg.Projectiles.RamDamage, "ram")
	}

	// Enemy shots against the player.
	for _, p := range g.projectiles {
		if p.Owner != OwnerEnemy || p.Spent || !player.Pos.Within(p.Pos, radius) {
			continue
		}
		p.Spent = true
		g.hitPlayer(g.cfg.Projectiles.EnemyShotDmg, "shot")
	}

	// Pickups.
	for _, pu := range g.powerups.PowerUps {
		if pu.Collected || !player.Pos.Within(pu.Pos, radius) {
			continue
		}
		pu.Collected = true
		g.collect(pu.Type)
	}

	g.sweepProjectiles()
	g.enemies.Sweep()
	g.powerups.Sweep()
}

// hitPlayer applies damage and ends the game when health runs out.
func (g *Game) hitPlayer(damage int, cause string) {
	if g.state == StateGameOver {
		return
	}
	dead := g.player.Damage(damage)
	g.emit(core.EventPlayerHit, cause)
	if dead {
		g.state = StateGameOver
		g.emit(core.EventGameOver, "")
	}
}

// collect activates a power-up, replacing any active one and restarting its timer.
func (g *Game) collect(t PowerUpType) {
	g.player.PowerUp = t
	g.player.PowerUpUntil = g.tickCount + g.cfg.PowerUps.Duration
	g.fireCooldown = 0
	g.emit(core.EventPowerUp, t.String())
}

// expirePowerUp clears the active power-up once its time is up.
func (g *Game) expirePowerUp() {
	if g.player.PowerUp == PowerUpNone || g.tickCount < g.player.PowerUpUntil {
		return
	}
	expired := g.player.PowerUp
	g.player.PowerUp = PowerUpNone
	g.player.PowerUpUntil = 0
	g.emit(core.EventPowerUpExpired, expired.String())
}
