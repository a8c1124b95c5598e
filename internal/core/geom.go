// Package core holds the types shared by the simulation and its front ends:
// world vectors, input frames, events and the character screen. It has no
// UI dependencies.
package core

import (
	"cmp"
	"math"
)

// Vec3 is a position in world space.
// X runs across the road, Y is height above ground, Z runs along the road
// with negative values ahead of the player.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 {
	d := v.Sub(o)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Within reports whether o lies strictly closer than radius.
// Compares squared distances to skip the square root.
func (v Vec3) Within(o Vec3, radius float64) bool {
	d := v.Sub(o)
	return d.X*d.X+d.Y*d.Y+d.Z*d.Z < radius*radius
}

// Rect is a cell-aligned rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
