package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	ints := []struct{ val, lo, hi, want int }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, tc := range ints {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}

	floats := []struct{ val, lo, hi, want float64 }{
		{5.5, 0, 10, 5.5},
		{-9.1, -9, 9, -9},
		{15.5, 0, 10, 10},
	}
	for _, tc := range floats {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestVec3Distance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec3
		dist   float64
		within bool // within radius 2
	}{
		{"same point", V3(1, 2, 3), V3(1, 2, 3), 0, true},
		{"axis aligned", V3(0, 0, 0), V3(0, 0, -5), 5, false},
		{"pythagorean", V3(0, 0, 0), V3(3, 0, 4), 5, false},
		{"projectile above car", V3(0, 1, -10), V3(0.5, 0, -10.5), 1.224744871391589, true},
		{"exactly on radius", V3(0, 0, 0), V3(2, 0, 0), 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.DistanceTo(tc.b); math.Abs(got-tc.dist) > 1e-9 {
				t.Errorf("DistanceTo() = %f, expected %f", got, tc.dist)
			}
			if got := tc.a.Within(tc.b, 2); got != tc.within {
				t.Errorf("Within(2) = %v, expected %v", got, tc.within)
			}
			if got := tc.b.Within(tc.a, 2); got != tc.within {
				t.Errorf("Within(2) (reversed) = %v, expected %v", got, tc.within)
			}
		})
	}
}

func TestSign(t *testing.T) {
	if Sign(3.2) != 1 || Sign(-0.1) != -1 || Sign(0) != 0 {
		t.Error("Sign returned wrong value")
	}
}
