package physics

import (
	"math"

	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/component"
)

// RectSource supplies the solid rectangles near a pixel position.
type RectSource interface {
	PhysicsRectsAround(pos common.Vec) []common.Rect
}

// Collisions records which sides were clamped against an obstacle during the
// most recent Update.
type Collisions struct {
	Up, Down, Left, Right bool
}

type Config struct {
	Gravity          float64
	TerminalVelocity float64
}

var DefaultConfig = Config{Gravity: 0.1, TerminalVelocity: 5}

// Body is the shared movement core of every entity. Position is continuous;
// the collision rectangle is derived from it on whole pixels.
type Body struct {
	Pos        common.Vec
	Width      int
	Height     int
	Velocity   common.Vec
	Collisions Collisions
	Flip       bool

	// LastMovement is the intent passed to the latest Update.
	LastMovement common.Vec

	Anim *component.Animation

	Config Config
}

func NewBody(pos common.Vec, w, h int, cfg Config) Body {
	return Body{Pos: pos, Width: w, Height: h, Config: cfg}
}

// Rect is the entity's collision rectangle.
func (b *Body) Rect() common.Rect {
	return common.RectAt(b.Pos, b.Width, b.Height)
}

// sweptRect rounds the leading edge outward along the direction of travel so
// any sub-pixel penetration registers as an overlap.
func (b *Body) sweptRect(dx, dy float64) common.Rect {
	x, y := math.Floor(b.Pos.X), math.Floor(b.Pos.Y)
	if dx > 0 {
		x = math.Ceil(b.Pos.X)
	}
	if dy > 0 {
		y = math.Ceil(b.Pos.Y)
	}
	return common.Rect{X: int(x), Y: int(y), Width: b.Width, Height: b.Height}
}

// Update moves the body by movement plus its velocity, X fully then Y fully,
// resolving each axis against the solid tiles around the new position.
func (b *Body) Update(tiles RectSource, movement common.Vec) {
	b.Collisions = Collisions{}

	b.Velocity.Y = math.Min(b.Config.TerminalVelocity, b.Velocity.Y+b.Config.Gravity)

	frame := movement.Add(b.Velocity)

	b.Pos.X += frame.X
	r := b.sweptRect(frame.X, 0)
	for _, obstacle := range tiles.PhysicsRectsAround(b.Pos) {
		if !r.Intersects(obstacle) {
			continue
		}
		switch {
		case frame.X > 0:
			r.X = obstacle.X - r.Width
			b.Collisions.Right = true
		case frame.X < 0:
			r.X = obstacle.Right()
			b.Collisions.Left = true
		default:
			continue
		}
		b.Pos.X = float64(r.X)
	}

	b.Pos.Y += frame.Y
	r = b.sweptRect(0, frame.Y)
	for _, obstacle := range tiles.PhysicsRectsAround(b.Pos) {
		if !r.Intersects(obstacle) {
			continue
		}
		switch {
		case frame.Y > 0:
			r.Y = obstacle.Y - r.Height
			b.Collisions.Down = true
		case frame.Y < 0:
			r.Y = obstacle.Bottom()
			b.Collisions.Up = true
		default:
			continue
		}
		b.Pos.Y = float64(r.Y)
	}

	if movement.X > 0 {
		b.Flip = false
	}
	if movement.X < 0 {
		b.Flip = true
	}

	b.LastMovement = movement

	if b.Collisions.Down || b.Collisions.Up {
		b.Velocity.Y = 0
	}

	b.Anim.Update()
}

// SetAnimation swaps in a fresh animation for key unless it is already
// playing, so running actions are not restarted.
func (b *Body) SetAnimation(src component.AnimationSource, key string) {
	if src == nil || (b.Anim != nil && b.Anim.Key == key) {
		return
	}
	b.Anim = src.NewAnimation(key)
}
