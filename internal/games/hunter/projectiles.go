package hunter

import (
	"math"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
)

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a shot travelling along the road.
type Projectile struct {
	Pos    core.Vec3
	DX     float64 // Lateral drift per tick
	DZ     float64 // Travel per tick, negative toward the horizon
	Owner  Owner
	Homing bool
	Spent  bool // Hit something and awaits removal
}

// inBounds reports whether the shot is still inside the playfield.
func (p *Projectile) inBounds(cfg config.ProjectileConfig, roadWidth float64) bool {
	return p.Pos.Z >= cfg.MinZ && p.Pos.Z <= cfg.MaxZ && math.Abs(p.Pos.X) <= roadWidth
}

// playerShots builds the projectiles for one trigger pull.
func playerShots(from core.Vec3, power PowerUpType, cfg config.ProjectileConfig) []*Projectile {
	origin := from
	origin.Y += cfg.SpawnHeight

	shot := func(dx float64) *Projectile {
		return &Projectile{
			Pos:    origin,
			DX:     dx,
			DZ:     -cfg.PlayerSpeed,
			Owner:  OwnerPlayer,
			Homing: power == PowerUpHoming,
		}
	}

	if power == PowerUpWideShot {
		return []*Projectile{shot(-cfg.SpreadDrift), shot(0), shot(cfg.SpreadDrift)}
	}
	return []*Projectile{shot(0)}
}

// enemyShot builds a projectile fired by an enemy toward the player.
func enemyShot(from core.Vec3, cfg config.ProjectileConfig) *Projectile {
	origin := from
	origin.Y += cfg.SpawnHeight
	return &Projectile{Pos: origin, DZ: cfg.EnemySpeed, Owner: OwnerEnemy}
}

// updateProjectiles advances every shot and drops those that left the playfield.
func (g *Game) updateProjectiles() {
	cfg := g.cfg.Projectiles
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Homing {
			if target := g.enemies.Nearest(p.Pos); target != nil {
				p.Pos.X += core.Clamp(target.Pos.X-p.Pos.X, -cfg.HomingTurn, cfg.HomingTurn)
			}
		}
		p.Pos.X += p.DX
		p.Pos.Z += p.DZ
		if p.inBounds(cfg, g.cfg.Road.Width) {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
}

// updateFiring handles the trigger: one shot per press, repeating while held with rapid fire.
func (g *Game) updateFiring(in core.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}

	fire := in.Has(core.ActionFire)
	if !fire && g.player.HasPowerUp(PowerUpRapidFire) && in.Holding(core.ActionFire) && g.fireCooldown == 0 {
		fire = true
	}
	if !fire {
		return
	}

	shots := playerShots(g.player.Pos, g.player.PowerUp, g.cfg.Projectiles)
	g.projectiles = append(g.projectiles, shots...)
	if g.player.HasPowerUp(PowerUpRapidFire) {
		g.fireCooldown = g.cfg.Projectiles.RapidCooldown
	}
	g.emit(core.EventShot, g.player.PowerUp.String())
}

// updateEnemyFire lets enemies in range shoot back.
func (g *Game) updateEnemyFire() {
	for _, e := range g.enemies.ReadyToFire(g.player.Pos, g.tickCount, g.Score()) {
		g.projectiles = append(g.projectiles, enemyShot(e.Pos, g.cfg.Projectiles))
	}
}

// sweepProjectiles removes spent shots.
func (g *Game) sweepProjectiles() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.Spent {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
}
