package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 16, Height: 16}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 8, Y: 8, Width: 16, Height: 16}, true},
		{"touching_right", Rect{X: 16, Y: 0, Width: 16, Height: 16}, false},
		{"touching_bottom", Rect{X: 0, Y: 16, Width: 16, Height: 16}, false},
		{"inside", Rect{X: 4, Y: 4, Width: 2, Height: 2}, true},
		{"zero_area", Rect{X: 4, Y: 4, Width: 0, Height: 2}, false},
		{"far", Rect{X: 100, Y: 100, Width: 16, Height: 16}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestRectAtFloorsNegative(t *testing.T) {
	r := RectAt(Vec{X: -0.5, Y: 3.9}, 8, 15)
	if r.X != -1 || r.Y != 3 {
		t.Fatalf("expected origin (-1,3), got (%d,%d)", r.X, r.Y)
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0.05, 0.1); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := Approach(-3, 0.5); got != -2.5 {
		t.Fatalf("expected -2.5, got %v", got)
	}
}

func TestVecArithmetic(t *testing.T) {
	v := Vec{X: 10, Y: 10}.Add(cp.ForAngle(math.Pi / 2).Mult(2))
	if math.Abs(v.X-10) > 1e-9 || math.Abs(v.Y-12) > 1e-9 {
		t.Fatalf("expected (10,12), got %v", v)
	}
	if got := v.Sub(Vec{X: 10, Y: 2}); math.Abs(got.Y-10) > 1e-9 {
		t.Fatalf("expected y=10, got %v", got)
	}
	mid := Vec{}.Lerp(Vec{X: 30, Y: -30}, 1.0/3)
	if math.Abs(mid.X-10) > 1e-9 || math.Abs(mid.Y+10) > 1e-9 {
		t.Fatalf("expected (10,-10), got %v", mid)
	}
}
