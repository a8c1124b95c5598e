package hunter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation state.
// Uses primitive types only so two runs can be compared field by field.
type Snapshot struct {
	Tick         int
	State        string
	Score        float64
	Health       int
	RoadSpeed    float64
	FireCooldown int

	PlayerX, PlayerY, PlayerZ float64
	PowerUp                   int
	PowerUpUntil              int

	EnemyNextSpawn   int
	PowerUpNextSpawn int

	// Each enemy is 6 floats: X, Y, Z, Speed, TargetX, Timer
	EnemyData []float64
	// Each projectile is 5 floats: X, Y, Z, DX, Owner
	ProjectileData []float64
	// Each power-up is 5 floats: X, Z, Type, Scale, PulseDir
	PowerUpData []float64
	// Each building is 2 floats: X, Z
	BuildingData []float64
	// Segment z positions
	SegmentData []float64
	// Each explosion is 2 floats: Z, Age
	ExplosionData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:             g.tickCount,
		State:            g.state,
		Score:            g.score,
		Health:           g.player.Health,
		RoadSpeed:        g.roadSpeed,
		FireCooldown:     g.fireCooldown,
		PlayerX:          g.player.Pos.X,
		PlayerY:          g.player.Pos.Y,
		PlayerZ:          g.player.Pos.Z,
		PowerUp:          int(g.player.PowerUp),
		PowerUpUntil:     g.player.PowerUpUntil,
		EnemyNextSpawn:   g.enemies.NextSpawn,
		PowerUpNextSpawn: g.powerups.NextSpawn,
	}

	for _, e := range g.enemies.Enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, e.Pos.Z, e.Speed, e.TargetX, float64(e.Timer))
	}
	for _, p := range g.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.Pos.X, p.Pos.Y, p.Pos.Z, p.DX, float64(p.Owner))
	}
	for _, p := range g.powerups.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, p.Pos.X, p.Pos.Z, float64(p.Type), p.Scale, p.PulseDir)
	}
	for _, b := range g.scenery.Buildings {
		snap.BuildingData = append(snap.BuildingData, b.X, b.Z)
	}
	for _, s := range g.scenery.Segments {
		snap.SegmentData = append(snap.SegmentData, s.Z)
	}
	for _, e := range g.explosions {
		snap.ExplosionData = append(snap.ExplosionData, e.Pos.Z, float64(e.Age))
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putFloats := func(vs []float64) {
		putInt(len(vs))
		for _, v := range vs {
			putFloat(v)
		}
	}

	putInt(snap.Tick)
	h.Write([]byte(snap.State))
	putFloat(snap.Score)
	putInt(snap.Health)
	putFloat(snap.RoadSpeed)
	putInt(snap.FireCooldown)
	putFloat(snap.PlayerX)
	putFloat(snap.PlayerY)
	putFloat(snap.PlayerZ)
	putInt(snap.PowerUp)
	putInt(snap.PowerUpUntil)
	putInt(snap.EnemyNextSpawn)
	putInt(snap.PowerUpNextSpawn)
	putFloats(snap.EnemyData)
	putFloats(snap.ProjectileData)
	putFloats(snap.PowerUpData)
	putFloats(snap.BuildingData)
	putFloats(snap.SegmentData)
	putFloats(snap.ExplosionData)

	return h.Sum64()
}
