package hunter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/roadhunter/internal/config"
)

// placementAttempts bounds the search for a free building spot at setup.
const placementAttempts = 200

// RoadSegment is one slab of road scrolling toward the player.
type RoadSegment struct {
	Z float64
}

// Building is a roadside block. X and Z locate its center.
type Building struct {
	X, Z   float64
	Width  float64
	Depth  float64
	Height float64
}

// overlaps reports whether two buildings are closer than their half extents plus padding on both axes.
func (b Building) overlaps(o Building, padding float64) bool {
	dx := math.Abs(b.X - o.X)
	dz := math.Abs(b.Z - o.Z)
	return dx < (b.Width+o.Width)/2+padding && dz < (b.Depth+o.Depth)/2+padding
}

// Scenery owns the road segments and buildings.
type Scenery struct {
	Segments  []RoadSegment
	Buildings []Building

	road config.RoadConfig
	cfg  config.BuildingConfig
	rng  *rand.Rand
}

// NewScenery lays out the road and places the initial buildings.
func NewScenery(road config.RoadConfig, cfg config.BuildingConfig, rng *rand.Rand) *Scenery {
	s := &Scenery{road: road, cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset restores the initial road layout and regenerates buildings.
func (s *Scenery) Reset() {
	s.Segments = make([]RoadSegment, s.road.Segments)
	for i := range s.Segments {
		s.Segments[i].Z = -float64(i) * s.road.SegmentLength
	}

	// A crowded band keeps fewer buildings; one that finds no free spot is dropped.
	count := max(s.cfg.Count, 0)
	s.Buildings = make([]Building, 0, count)
	for range count {
		b := s.newBuilding()
		for attempt := 0; attempt < placementAttempts; attempt++ {
			b.X = s.sideX()
			b.Z = -s.cfg.SpawnDistance + s.rng.Float64()*s.cfg.SpawnDistance
			if !s.overlapsAny(b, -1) {
				s.Buildings = append(s.Buildings, b)
				break
			}
		}
	}
}

// Update scrolls everything toward the player by speed and recycles what passed.
func (s *Scenery) Update(speed float64) {
	backZ := -float64(s.road.Segments-1) * s.road.SegmentLength
	for i := range s.Segments {
		s.Segments[i].Z += speed
		if s.Segments[i].Z > s.road.RecycleAt {
			s.Segments[i].Z = backZ
		}
	}

	for i := range s.Buildings {
		s.Buildings[i].Z += speed
		if s.Buildings[i].Z > s.cfg.RecycleAt {
			s.recycle(i)
		}
	}
}

// recycle moves building i back into the distance on a random side.
// A spot that overlaps another building falls back to the far spawn line.
func (s *Scenery) recycle(i int) {
	b := &s.Buildings[i]
	b.X = s.sideX()
	b.Z = -s.cfg.SpawnDistance + s.rng.Float64()*(s.cfg.SpawnDistance-s.cfg.MinDistance)
	if s.overlapsAny(*b, i) {
		b.Z = -s.cfg.SpawnDistance
	}
}

func (s *Scenery) newBuilding() Building {
	return Building{
		Width:  randRange(s.rng, s.cfg.MinSize, s.cfg.MaxSize),
		Depth:  randRange(s.rng, s.cfg.MinSize, s.cfg.MaxSize),
		Height: randRange(s.rng, s.cfg.MinHeight, s.cfg.MaxHeight),
	}
}

func (s *Scenery) sideX() float64 {
	side := 1.0
	if s.rng.Float64() < 0.5 {
		side = -1
	}
	return side * (s.road.Edge() + s.cfg.SideOffset)
}

// overlapsAny checks b against every building except the one at index skip.
func (s *Scenery) overlapsAny(b Building, skip int) bool {
	for j, o := range s.Buildings {
		if j == skip {
			continue
		}
		if b.overlaps(o, s.cfg.Padding) {
			return true
		}
	}
	return false
}

// randRange returns a float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randIntn is rng.Intn that tolerates n <= 0.
func randIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
