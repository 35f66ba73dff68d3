package common

import "math"

// Rect is a whole-pixel axis aligned rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectAt builds a rectangle whose origin is the floor of a float position.
func RectAt(pos Vec, w, h int) Rect {
	return Rect{X: int(math.Floor(pos.X)), Y: int(math.Floor(pos.Y)), Width: w, Height: h}
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// CenterX and CenterY round toward the origin so effects spawn on whole pixels.
func (r Rect) CenterX() int { return r.X + r.Width/2 }
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

func (r Rect) Center() Vec {
	return Vec{X: float64(r.CenterX()), Y: float64(r.CenterY())}
}

// Intersects reports a strict overlap. Touching edges and empty rectangles
// never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ContainsPoint uses half-open bounds: the left and top edges are inside.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}
