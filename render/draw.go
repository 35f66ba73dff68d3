package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/effects"
	"github.com/milk9111/ninja/physics"
	"github.com/milk9111/ninja/tilemap"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// NewTileBlitter draws tilemap tiles from atlas onto dst.
func NewTileBlitter(dst *ebiten.Image, atlas *Atlas) tilemap.Blitter {
	return tileBlitter{dst: dst, atlas: atlas}
}

type tileBlitter struct {
	dst   *ebiten.Image
	atlas *Atlas
}

func (b tileBlitter) DrawTile(t tilemap.Tile, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Floor(x), math.Floor(y))
	b.dst.DrawImage(b.atlas.Tile(t.Type, t.Variant), op)
}

// drawBody draws img at the body position plus the sprite offset, mirrored
// horizontally when the body is flipped.
func drawBody(dst, img *ebiten.Image, b *physics.Body, animOffset, offset common.Vec) {
	op := &ebiten.DrawImageOptions{}
	if b.Flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	pos := b.Pos.Sub(offset).Add(animOffset)
	op.GeoM.Translate(math.Floor(pos.X), math.Floor(pos.Y))
	dst.DrawImage(img, op)
}

// drawCentered draws img centered on pos.
func drawCentered(dst, img *ebiten.Image, pos, offset common.Vec) {
	op := &ebiten.DrawImageOptions{}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Translate(math.Floor(pos.X-offset.X)-float64(w/2), math.Floor(pos.Y-offset.Y)-float64(h/2))
	dst.DrawImage(img, op)
}

// fillPolygon fills a convex polygon as a triangle fan.
func fillPolygon(dst *ebiten.Image, pts []common.Vec, clr color.Color, blend ebiten.Blend) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(r) / 0xffff, ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff, ColorA: float32(a) / 0xffff,
		}
	}
	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend}
	dst.DrawTriangles(verts, indices, whiteSubImage, op)
}

func drawSpark(dst *ebiten.Image, s *effects.Spark, offset common.Vec) {
	pts := s.Points(offset)
	fillPolygon(dst, pts[:], color.White, ebiten.BlendSourceOver)
}

// circle approximates a circle with n points.
func circle(center common.Vec, radius float64, n int) []common.Vec {
	pts := make([]common.Vec, n)
	for i := range pts {
		a := float64(i) / float64(n) * math.Pi * 2
		pts[i] = center.Add(cp.ForAngle(a).Mult(radius))
	}
	return pts
}
