package camera

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/ninja/common"
)

// Camera tracks the world-space top-left of the view and the remaining
// screen shake.
type Camera struct {
	Scroll common.Vec

	screenW int
	screenH int
	// smooth divides the remaining distance each frame; higher is slower.
	// Values <= 1 follow instantly.
	smooth float64
	shake  float64
}

func New(screenW, screenH int, smooth float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, smooth: smooth}
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = f
}

func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

func (c *Camera) topLeftFor(center common.Vec) common.Vec {
	return common.Vec{
		X: center.X - float64(c.screenW)/2,
		Y: center.Y - float64(c.screenH)/2,
	}
}

// Update eases the view toward centering on target. Call once per tick.
func (c *Camera) Update(target common.Vec) {
	want := c.topLeftFor(target)
	if c.smooth <= 1 {
		c.Scroll = want
		return
	}
	c.Scroll = c.Scroll.Lerp(want, 1/c.smooth)
}

// SnapTo centers the view on target immediately, e.g. after a level load.
func (c *Camera) SnapTo(target common.Vec) {
	c.Scroll = c.topLeftFor(target)
}

// Offset is the whole-pixel scroll used for drawing.
func (c *Camera) Offset() common.Vec {
	return common.Vec{X: math.Floor(c.Scroll.X), Y: math.Floor(c.Scroll.Y)}
}

// Shake raises the shake to at least magnitude frames.
func (c *Camera) Shake(magnitude float64) {
	c.shake = math.Max(c.shake, magnitude)
}

func (c *Camera) Shaking() float64 {
	return c.shake
}

// Decay winds the shake down by one frame.
func (c *Camera) Decay() {
	c.shake = math.Max(0, c.shake-1)
}

// ShakeOffset is a random screen displacement within ±shake/2.
func (c *Camera) ShakeOffset(rng *rand.Rand) common.Vec {
	if c.shake <= 0 {
		return common.Vec{}
	}
	return common.Vec{
		X: rng.Float64()*c.shake - c.shake/2,
		Y: rng.Float64()*c.shake - c.shake/2,
	}
}
