package hunter

import (
	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
)

// Player is the vehicle the user drives.
type Player struct {
	Pos          core.Vec3
	Health       int
	PowerUp      PowerUpType // PowerUpNone when nothing is active
	PowerUpUntil int         // Tick at which the active power-up expires
}

// NewPlayer creates a player at the origin with full health.
func NewPlayer(health int) *Player {
	return &Player{Health: health}
}

// Move applies held steering input and keeps the player inside its envelope.
// Returns the road speed implied by accelerate/brake.
func (p *Player) Move(in core.InputFrame, cfg config.PlayerConfig, road config.RoadConfig) float64 {
	edge := road.Edge()

	if in.Holding(core.ActionLeft) {
		p.Pos.X -= cfg.HorizontalSpeed
	}
	if in.Holding(core.ActionRight) {
		p.Pos.X += cfg.HorizontalSpeed
	}
	p.Pos.X = core.Clamp(p.Pos.X, -edge, edge)

	if in.Holding(core.ActionAscend) {
		p.Pos.Y += cfg.VerticalSpeed
	}
	if in.Holding(core.ActionDescend) {
		p.Pos.Y -= cfg.VerticalSpeed
	}
	p.Pos.Y = core.Clamp(p.Pos.Y, cfg.MinHeight, cfg.MaxHeight)

	speed := road.BaseSpeed
	switch {
	case in.Holding(core.ActionUp):
		p.Pos.Z -= cfg.ForwardSpeed
		speed = road.BoostSpeed
	case in.Holding(core.ActionDown):
		p.Pos.Z += cfg.ForwardSpeed
		speed = road.BrakeSpeed
	}
	p.Pos.Z = core.Clamp(p.Pos.Z, cfg.MaxBackward, cfg.MaxForward)

	return speed
}

// Damage subtracts health, never going below zero.
// Returns true if the player is out of health.
func (p *Player) Damage(amount int) bool {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// HasPowerUp reports whether t is the active power-up.
func (p *Player) HasPowerUp(t PowerUpType) bool {
	return p.PowerUp == t
}
