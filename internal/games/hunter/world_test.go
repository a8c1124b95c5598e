package hunter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
)

func TestSceneryInitialLayout(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(99)))

	if len(s.Segments) != 5 {
		t.Fatalf("segments = %d, want 5", len(s.Segments))
	}
	for i, seg := range s.Segments {
		if want := -float64(i) * 100; seg.Z != want {
			t.Errorf("segment %d at z=%v, want %v", i, seg.Z, want)
		}
	}

	if len(s.Buildings) != 20 {
		t.Fatalf("buildings = %d, want 20", len(s.Buildings))
	}
	for i, b := range s.Buildings {
		if b.X != 24 && b.X != -24 {
			t.Errorf("building %d off the roadside: x=%v", i, b.X)
		}
		if b.Z < -400 || b.Z >= 0 {
			t.Errorf("building %d out of spawn range: z=%v", i, b.Z)
		}
		if b.Width < 3 || b.Width >= 7 || b.Height < 5 || b.Height >= 15 {
			t.Errorf("building %d has bad size %+v", i, b)
		}
		for j := i + 1; j < len(s.Buildings); j++ {
			if b.overlaps(s.Buildings[j], cfg.Buildings.Padding) {
				t.Errorf("buildings %d and %d overlap", i, j)
			}
		}
	}
}

func TestSceneryDropsUnplaceableBuildings(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cfg.Buildings.Count = 50
	cfg.Buildings.SpawnDistance = 20
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(5)))

	if len(s.Buildings) == 0 || len(s.Buildings) >= 50 {
		t.Fatalf("buildings = %d, want some but not all of 50", len(s.Buildings))
	}
	for i, b := range s.Buildings {
		for j := i + 1; j < len(s.Buildings); j++ {
			if b.overlaps(s.Buildings[j], cfg.Buildings.Padding) {
				t.Errorf("buildings %d and %d overlap", i, j)
			}
		}
	}
}

func TestSceneryNegativeCount(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cfg.Buildings.Count = -1
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(1)))
	if len(s.Buildings) != 0 {
		t.Errorf("buildings = %d, want 0", len(s.Buildings))
	}
}

func TestSegmentRecycling(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(1)))

	// 201 ticks at 0.5 moves the first segment from 0 to 100.5.
	for i := 0; i < 201; i++ {
		s.Update(0.5)
	}
	if s.Segments[0].Z != -400 {
		t.Errorf("segment past the threshold should wrap to -400, got %v", s.Segments[0].Z)
	}
	if s.Segments[1].Z != 0.5 {
		t.Errorf("other segments keep scrolling, got %v", s.Segments[1].Z)
	}
}

func TestBuildingRecycling(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(5)))

	for i := 0; i < 2000; i++ {
		s.Update(0.7)
		for _, b := range s.Buildings {
			if b.Z > cfg.Buildings.RecycleAt {
				t.Fatalf("building not recycled: z=%v", b.Z)
			}
		}
	}
}

func TestBuildingRecycleAvoidsOverlap(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	s := NewScenery(cfg.Road, cfg.Buildings, rand.New(rand.NewSource(1)))
	s.Buildings = []Building{
		{X: 24, Z: 250, Width: 5, Depth: 5},
	}
	// Fill the whole recycle band on both sides so any random spot overlaps.
	for z := -400.0; z < -90; z += 6 {
		s.Buildings = append(s.Buildings, Building{X: 24, Z: z, Width: 5, Depth: 5}, Building{X: -24, Z: z, Width: 5, Depth: 5})
	}

	s.recycle(0)

	if s.Buildings[0].Z != -400 {
		t.Errorf("overlapping spot should fall back to the far line, got %v", s.Buildings[0].Z)
	}
}

func TestPowerUpPulse(t *testing.T) {
	p := &PowerUp{Scale: 1, PulseDir: 1}
	lo, hi := 2.0, 0.0
	for i := 0; i < 200; i++ {
		p.Pulse(0.05, 0.8, 1.2)
		lo = min(lo, p.Scale)
		hi = max(hi, p.Scale)
		if p.Scale < 0.8 || p.Scale > 1.2 {
			t.Fatalf("scale out of bounds: %v", p.Scale)
		}
	}
	if hi != 1.2 || lo != 0.8 {
		t.Errorf("pulse should reach both bounds, got [%v, %v]", lo, hi)
	}
}

func TestPowerUpSpawnTimer(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	pm := NewPowerUpManager(cfg, rand.New(rand.NewSource(3)))
	if pm.NextSpawn < 600 || pm.NextSpawn >= 900 {
		t.Fatalf("spawn interval out of range: %d", pm.NextSpawn)
	}

	wait := pm.NextSpawn
	for i := 0; i < wait; i++ {
		pm.Update(0.5)
	}
	if len(pm.PowerUps) != 1 {
		t.Fatalf("expected a power-up after %d ticks, got %d", wait, len(pm.PowerUps))
	}
	p := pm.PowerUps[0]
	if p.Type == PowerUpNone || p.Type >= powerUpCount {
		t.Errorf("invalid type %v", p.Type)
	}
	if p.Pos.Z != -200+0.5 {
		t.Errorf("power-up should spawn at z=-200 and scroll, got %v", p.Pos.Z)
	}
}

func TestPowerUpsDisabled(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cfg.PowerUps.Enabled = false
	pm := NewPowerUpManager(cfg, rand.New(rand.NewSource(3)))
	for i := 0; i < 2000; i++ {
		pm.Update(0.5)
	}
	if len(pm.PowerUps) != 0 || pm.TryDrop(core.V3(0, 0, 0)) {
		t.Error("disabled power-ups should never appear")
	}
}

func TestPowerUpDespawnsBehindPlayer(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	pm := NewPowerUpManager(cfg, rand.New(rand.NewSource(3)))
	pm.NextSpawn = 10000
	pm.PowerUps = []*PowerUp{{Pos: core.V3(0, 0, 49.8), Type: PowerUpHoming, Scale: 1, PulseDir: 1}}
	pm.Update(0.5)
	if len(pm.PowerUps) != 0 {
		t.Error("power-up past z=50 should be removed")
	}
}

func TestEnemyWanderTargetsStayOnRoad(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cfg.Enemies.FlipChance = 1
	diff := config.NewDifficultyManager(cfg.Difficulty)
	em := NewEnemyManager(cfg, rand.New(rand.NewSource(11)), diff)
	e := em.Spawn(0, 0)
	for i := 0; i < 5000; i++ {
		e.Pos.Z = 0
		em.move(e)
		if e.TargetX < -8 || e.TargetX > 8 {
			t.Fatalf("target drifted off the lane span: %v", e.TargetX)
		}
	}
}

func TestEnemySpawnRanges(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	em := NewEnemyManager(cfg, rand.New(rand.NewSource(21)), diff)
	for i := 0; i < 200; i++ {
		e := em.Spawn(0, 0)
		if e.Pos.X < -8 || e.Pos.X >= 8 {
			t.Errorf("spawn x out of range: %v", e.Pos.X)
		}
		if e.Speed < 0.15 || e.Speed >= 0.25 {
			t.Errorf("speed out of range: %v", e.Speed)
		}
		if e.HorizontalSpeed < 0.035 || e.HorizontalSpeed > 0.065 {
			t.Errorf("horizontal speed out of range: %v", e.HorizontalSpeed)
		}
		if e.Direction != 1 && e.Direction != -1 {
			t.Errorf("direction = %v", e.Direction)
		}
		if e.Timer < 0 || e.Timer >= 100 {
			t.Errorf("timer = %d", e.Timer)
		}
	}
}

func TestEnemiesSpeedUpWithDifficulty(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	em := NewEnemyManager(cfg, rand.New(rand.NewSource(21)), diff)
	e := em.Spawn(0, cfg.Difficulty.Progression.MaxAt)
	if e.Speed < 0.15*1.8 {
		t.Errorf("max difficulty should scale speed, got %v", e.Speed)
	}
}
