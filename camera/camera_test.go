package camera

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/ninja/common"
)

func TestFollowEasesTowardTarget(t *testing.T) {
	c := New(320, 240, 30)
	target := common.Vec{X: 460, Y: 120}

	c.Update(target)
	if math.Abs(c.Scroll.X-10) > 1e-9 || c.Scroll.Y != 0 {
		t.Fatalf("expected 1/30 of the way, got %v", c.Scroll)
	}
	for i := 0; i < 1000; i++ {
		c.Update(target)
	}
	if math.Abs(c.Scroll.X-300) > 1e-6 {
		t.Fatalf("camera should settle on the target, got %v", c.Scroll)
	}

	c.SnapTo(common.Vec{X: 160.5, Y: 120})
	if c.Offset() != (common.Vec{X: 0, Y: 0}) {
		t.Fatalf("expected whole-pixel offset, got %v", c.Offset())
	}
}

func TestShake(t *testing.T) {
	c := New(320, 240, 30)
	rng := rand.New(rand.NewPCG(1, 2))
	if c.ShakeOffset(rng) != (common.Vec{}) {
		t.Fatalf("no shake should mean no offset")
	}

	c.Shake(16)
	c.Shake(4)
	if c.Shaking() != 16 {
		t.Fatalf("shake keeps the max, got %v", c.Shaking())
	}
	for i := 0; i < 100; i++ {
		off := c.ShakeOffset(rng)
		if math.Abs(off.X) > 8 || math.Abs(off.Y) > 8 {
			t.Fatalf("offset %v exceeds half the shake", off)
		}
	}
	for i := 0; i < 20; i++ {
		c.Decay()
	}
	if c.Shaking() != 0 {
		t.Fatalf("shake should decay to zero, got %v", c.Shaking())
	}
}
