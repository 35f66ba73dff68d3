package render

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/effects"
	"github.com/milk9111/ninja/sim"
	"golang.org/x/image/colornames"
)

// Renderer draws a simulation into a fixed-size logical screen. The world
// goes to an offscreen layer whose dark silhouette is stamped underneath
// it for an outline, then the whole frame is shaken onto the screen.
type Renderer struct {
	Atlas *Atlas
	Debug bool

	w, h     int
	display  *ebiten.Image
	display2 *ebiten.Image
	mask     *ebiten.Image
	rng      *rand.Rand
}

func NewRenderer(atlas *Atlas, w, h int) *Renderer {
	return &Renderer{
		Atlas:    atlas,
		w:        w,
		h:        h,
		display:  ebiten.NewImage(w, h),
		display2: ebiten.NewImage(w, h),
		mask:     ebiten.NewImage(w, h),
		rng:      rand.New(rand.NewPCG(7, 11)),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, s *sim.Simulation) {
	offset := s.Camera().Offset()

	r.display.Clear()
	r.drawWorld(r.display, s, offset)

	r.display2.Clear()
	bg := &ebiten.DrawImageOptions{}
	r.display2.DrawImage(r.Atlas.Image("background"), bg)

	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(d[0], d[1])
		op.ColorScale.Scale(0, 0, 0, 180.0/255)
		r.display2.DrawImage(r.display, op)
	}
	r.display2.DrawImage(r.display, &ebiten.DrawImageOptions{})

	r.drawTransition(r.display2, s)

	if r.Debug {
		r.drawDebug(r.display2, s, offset)
	}

	shake := s.Camera().ShakeOffset(r.rng)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(shake.X, shake.Y)
	screen.DrawImage(r.display2, op)
}

func (r *Renderer) drawWorld(dst *ebiten.Image, s *sim.Simulation, offset common.Vec) {
	s.Tiles().Render(tileBlitter{dst: dst, atlas: r.Atlas}, offset, r.w, r.h)

	gun := r.Atlas.Image("gun")
	for _, e := range s.Enemies() {
		drawBody(dst, r.Atlas.Frame(e.Anim), &e.Body, e.AnimOffset(), offset)

		rect := e.Rect()
		op := &ebiten.DrawImageOptions{}
		x := float64(rect.CenterX()+4) - offset.X
		if e.Flip {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(gun.Bounds().Dx()), 0)
			x = float64(rect.CenterX()-4-gun.Bounds().Dx()) - offset.X
		}
		op.GeoM.Translate(x, float64(rect.CenterY())-offset.Y)
		dst.DrawImage(gun, op)
	}

	if p := s.Player(); p.Visible() {
		drawBody(dst, r.Atlas.Frame(p.Anim), &p.Body, p.AnimOffset(), offset)
	}

	fx := s.Effects()
	projectile := r.Atlas.Image("projectile")
	fx.Projectiles.Each(func(p *effects.Projectile) {
		drawCentered(dst, projectile, p.Pos, offset)
	})
	fx.Sparks.Each(func(sp *effects.Spark) {
		drawSpark(dst, sp, offset)
	})
	fx.Particles.Each(func(p *effects.Particle) {
		drawCentered(dst, r.Atlas.Frame(p.Anim), p.Pos, offset)
	})
}

// drawTransition covers the screen in black except for a circle that
// shrinks while closing and grows while opening.
func (r *Renderer) drawTransition(dst *ebiten.Image, s *sim.Simulation) {
	radius := s.TransitionRadius()
	if radius < 0 {
		return
	}
	r.mask.Fill(color.Black)
	if radius > 0 {
		center := common.Vec{X: float64(r.w / 2), Y: float64(r.h / 2)}
		fillPolygon(r.mask, circle(center, radius, 48), color.White, ebiten.BlendClear)
	}
	dst.DrawImage(r.mask, &ebiten.DrawImageOptions{})
}

func (r *Renderer) drawDebug(dst *ebiten.Image, s *sim.Simulation, offset common.Vec) {
	box := func(rect common.Rect, clr color.Color) {
		vector.StrokeRect(dst,
			float32(float64(rect.X)-offset.X), float32(float64(rect.Y)-offset.Y),
			float32(rect.Width), float32(rect.Height), 1, clr, false)
	}
	p := s.Player()
	box(p.Rect(), colornames.Lime)
	for _, e := range s.Enemies() {
		box(e.Rect(), colornames.Red)
	}
	for _, rect := range s.Tiles().PhysicsRectsAround(p.Pos) {
		box(rect, colornames.Yellow)
	}
	ebitenutil.DebugPrint(dst, fmt.Sprintf("level %d  enemies %d  dash %d  air %d  fps %.0f",
		s.Level(), len(s.Enemies()), p.Dashing, p.AirTime, ebiten.ActualFPS()))
}
