package effects

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/tilemap"
)

type stubTarget struct {
	rect         common.Rect
	invulnerable bool
	hits         int
}

func (s *stubTarget) Rect() common.Rect  { return s.rect }
func (s *stubTarget) Invulnerable() bool { return s.invulnerable }
func (s *stubTarget) Hit()               { s.hits++ }

func newFX(q *events.Queue) *Effects {
	return New(nil, rand.New(rand.NewPCG(7, 7)), q, DefaultConfig)
}

func TestSparkDecaysToZero(t *testing.T) {
	s := Spark{Angle: 0, Speed: 1}
	frames := 0
	for !s.Update(0.1) {
		frames++
		if frames > 20 {
			t.Fatalf("spark never expired")
		}
	}
	if s.Speed != 0 {
		t.Fatalf("expected speed 0, got %v", s.Speed)
	}
	if s.Pos.X <= 0 || s.Pos.Y != 0 {
		t.Fatalf("spark should have moved right, got %v", s.Pos)
	}
}

func TestSparkPoints(t *testing.T) {
	s := Spark{Pos: common.Vec{X: 10, Y: 10}, Angle: 0, Speed: 2}
	pts := s.Points(common.Vec{X: 10, Y: 0})
	if math.Abs(pts[0].X-6) > 1e-9 || math.Abs(pts[0].Y-10) > 1e-9 {
		t.Fatalf("tip should be 3*speed ahead, got %v", pts[0])
	}
	if math.Abs(pts[2].X+6) > 1e-9 {
		t.Fatalf("tail should be 3*speed behind, got %v", pts[2])
	}
	if math.Abs(pts[1].Y-11) > 1e-9 || math.Abs(pts[3].Y-9) > 1e-9 {
		t.Fatalf("sides should be 0.5*speed across, got %v %v", pts[1], pts[3])
	}
}

func TestParticleExpiresAfterAnimation(t *testing.T) {
	fx := newFX(nil)
	fx.SpawnParticle(ParticleSpark, common.Vec{}, common.Vec{X: 1}, 0)
	for frame := 0; frame < 10; frame++ {
		fx.Update(nil, nil)
		fx.Compact()
	}
	if fx.Particles.Len() != 0 {
		t.Fatalf("single image particle should have expired, %d left", fx.Particles.Len())
	}
}

func TestLeafWithoutAnimation(t *testing.T) {
	p := Particle{Kind: ParticleLeaf, Velocity: common.Vec{X: -0.1, Y: 0.3}}
	if p.Update() {
		t.Fatalf("a particle without an animation is never done")
	}
	if p.Pos != (common.Vec{X: -0.1, Y: 0.3}) {
		t.Fatalf("leaf without an animation should only move by its velocity, got %v", p.Pos)
	}
}

func TestProjectileSolidImpact(t *testing.T) {
	m := tilemap.New(16)
	m.Set(tilemap.GridPos{X: 2, Y: 0}, "stone", 0)
	fx := newFX(nil)
	fx.SpawnProjectile(common.Vec{X: 30, Y: 8}, 1.5)

	fx.Update(m, nil)
	if fx.Projectiles.Live() != 1 {
		t.Fatalf("projectile should still fly before reaching the wall")
	}
	fx.Update(m, nil)
	if fx.Projectiles.Live() != 0 {
		t.Fatalf("projectile should expire inside the wall")
	}
	if fx.Sparks.Len() != 4 {
		t.Fatalf("expected 4 impact sparks, got %d", fx.Sparks.Len())
	}
	fx.Sparks.Each(func(s *Spark) {
		if math.Cos(s.Angle) >= 0 {
			t.Fatalf("impact sparks should fly back to the left, angle %v", s.Angle)
		}
	})
}

func TestProjectileLifetime(t *testing.T) {
	fx := newFX(nil)
	fx.SpawnProjectile(common.Vec{}, -1.5)
	for i := 0; i < 360; i++ {
		fx.Update(tilemap.New(16), nil)
	}
	if fx.Projectiles.Live() != 1 {
		t.Fatalf("projectile should live through age 360")
	}
	fx.Update(tilemap.New(16), nil)
	if fx.Projectiles.Live() != 0 {
		t.Fatalf("projectile should expire after age 360")
	}
}

func TestProjectileHitsTarget(t *testing.T) {
	cases := []struct {
		name         string
		invulnerable bool
		wantHit      bool
	}{
		{"vulnerable", false, true},
		{"dashing", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := &events.Queue{}
			fx := newFX(q)
			target := &stubTarget{rect: common.Rect{X: 10, Y: 0, Width: 8, Height: 15}, invulnerable: c.invulnerable}
			fx.SpawnProjectile(common.Vec{X: 9, Y: 5}, 1.5)
			fx.Update(tilemap.New(16), target)

			if (target.hits == 1) != c.wantHit {
				t.Fatalf("expected hit=%v, got %d hits", c.wantHit, target.hits)
			}
			if !c.wantHit {
				if fx.Projectiles.Live() != 1 || q.Len() != 0 {
					t.Fatalf("projectile should pass through silently")
				}
				return
			}
			if fx.Projectiles.Live() != 0 {
				t.Fatalf("projectile should expire on hit")
			}
			if fx.Sparks.Len() != 32 || fx.Particles.Len() != 30 {
				t.Fatalf("expected burst of 32 sparks and 30 particles, got %d and %d", fx.Sparks.Len(), fx.Particles.Len())
			}
			evts := q.Drain()
			if len(evts) != 2 || evts[0].Kind != events.KindShake || evts[0].Magnitude != 16 || evts[1].Name != events.SoundHit {
				t.Fatalf("unexpected events %+v", evts)
			}
		})
	}
}
