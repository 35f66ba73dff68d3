package effects

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/component"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/tilemap"
)

// SolidChecker answers whether a pixel position lies inside a physics tile.
type SolidChecker interface {
	SolidCheck(pos common.Vec) (tilemap.Tile, bool)
}

// Target is what projectiles can hit.
type Target interface {
	Rect() common.Rect
	// Invulnerable is true while the target cannot be hit, e.g. during the
	// fast part of a dash.
	Invulnerable() bool
	Hit()
}

type Config struct {
	SparkDecay         float64
	ProjectileLifetime int
	HitShake           float64
}

var DefaultConfig = Config{SparkDecay: 0.1, ProjectileLifetime: 360, HitShake: 16}

// Effects owns the three transient pools and the helpers that fill them.
type Effects struct {
	Sparks      Pool[Spark]
	Particles   Pool[Particle]
	Projectiles Pool[Projectile]

	Config Config

	anims  component.AnimationSource
	rng    *rand.Rand
	events events.Sink
}

func New(anims component.AnimationSource, rng *rand.Rand, sink events.Sink, cfg Config) *Effects {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Effects{Config: cfg, anims: anims, rng: rng, events: sink}
}

func (fx *Effects) SpawnSpark(pos common.Vec, angle, speed float64) {
	fx.Sparks.Spawn(Spark{Pos: pos, Angle: angle, Speed: speed})
}

// SpawnParticle starts a particle of kind at the given animation frame.
func (fx *Effects) SpawnParticle(kind string, pos, vel common.Vec, frame int) {
	var anim *component.Animation
	if fx.anims != nil {
		anim = fx.anims.NewAnimation("particle/" + kind)
	}
	if anim == nil {
		anim = component.NewAnimation("particle/"+kind, 1, 5, false)
	}
	anim.Frame = frame
	fx.Particles.Spawn(Particle{Kind: kind, Pos: pos, Velocity: vel, Anim: anim})
}

func (fx *Effects) SpawnProjectile(pos common.Vec, speed float64) {
	fx.Projectiles.Spawn(Projectile{Pos: pos, Speed: speed})
}

// Burst is the kill effect: a ring of sparks and particles around center
// plus two long horizontal streaks.
func (fx *Effects) Burst(center common.Vec) {
	for i := 0; i < 30; i++ {
		angle := fx.rng.Float64() * math.Pi * 2
		speed := fx.rng.Float64() * 5
		fx.SpawnSpark(center, angle, 2+fx.rng.Float64())
		vel := cp.ForAngle(angle + math.Pi).Mult(speed * 0.5)
		fx.SpawnParticle(ParticleSpark, center, vel, fx.rng.IntN(8))
	}
	fx.SpawnSpark(center, 0, 5+fx.rng.Float64())
	fx.SpawnSpark(center, math.Pi, 5+fx.rng.Float64())
}

// Update advances projectiles, then sparks, then particles. Sparks and
// particles spawned by projectile impacts are updated in the same frame.
func (fx *Effects) Update(tiles SolidChecker, target Target) {
	fx.Projectiles.Update(func(p *Projectile) bool {
		return fx.updateProjectile(p, tiles, target)
	})
	fx.Sparks.Update(func(s *Spark) bool {
		return s.Update(fx.Config.SparkDecay)
	})
	fx.Particles.Update(func(p *Particle) bool {
		return p.Update()
	})
}

func (fx *Effects) updateProjectile(p *Projectile, tiles SolidChecker, target Target) bool {
	p.Pos.X += p.Speed
	p.Age++

	if tiles != nil {
		if _, solid := tiles.SolidCheck(p.Pos); solid {
			back := 0.0
			if p.Speed > 0 {
				back = math.Pi
			}
			for i := 0; i < 4; i++ {
				fx.SpawnSpark(p.Pos, fx.rng.Float64()-0.5+back, 2+fx.rng.Float64())
			}
			return true
		}
	}
	if p.Age > fx.Config.ProjectileLifetime {
		return true
	}
	if target == nil || target.Invulnerable() {
		return false
	}
	r := target.Rect()
	if !r.ContainsPoint(p.Pos) {
		return false
	}
	target.Hit()
	events.Shake(fx.events, fx.Config.HitShake)
	events.PlaySound(fx.events, events.SoundHit)
	fx.Burst(r.Center())
	return true
}

// Compact drops the members that expired during the last Update.
func (fx *Effects) Compact() {
	fx.Sparks.Compact()
	fx.Particles.Compact()
	fx.Projectiles.Compact()
}

func (fx *Effects) Clear() {
	fx.Sparks.Clear()
	fx.Particles.Clear()
	fx.Projectiles.Clear()
}
