package entity

import (
	"math"

	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/physics"
	"github.com/milk9111/ninja/prefabs"
)

type Enemy struct {
	physics.Body
	Spec prefabs.EnemySpec

	// Walking counts down the frames left in the current walk.
	Walking int
	Patrol  PatrolPolicy
}

func NewEnemy(pos common.Vec, spec prefabs.EnemySpec, cfg physics.Config, patrol PatrolPolicy) *Enemy {
	if patrol == nil {
		patrol = NewRandomPatrol(spec)
	}
	return &Enemy{
		Body:   physics.NewBody(pos, spec.Width, spec.Height, cfg),
		Spec:   spec,
		Patrol: patrol,
	}
}

// Update runs one frame of patrol and shooting. It reports true when the
// enemy was killed by a dashing player and should be removed.
func (e *Enemy) Update(ctx *Context, player *Player) bool {
	var movement common.Vec

	if e.Walking > 0 {
		if e.groundAhead(ctx) {
			if e.Collisions.Right || e.Collisions.Left {
				e.Flip = !e.Flip
			} else {
				movement.X = e.facing() * e.Spec.WalkSpeed
			}
		} else {
			e.Flip = !e.Flip
		}

		e.Walking = max(0, e.Walking-1)
		if e.Walking == 0 && player != nil {
			e.shootAt(ctx, player)
		}
	} else if e.Patrol != nil {
		e.Walking = e.Patrol.NextWalk(ctx.Rand)
	}

	e.Body.Update(ctx.Tiles, movement)

	if movement.X != 0 {
		e.SetAnimation(ctx.Anims, "enemy/run")
	} else {
		e.SetAnimation(ctx.Anims, "enemy/idle")
	}

	if player == nil || !player.Invulnerable() || !e.Rect().Intersects(player.Rect()) {
		return false
	}
	events.Shake(ctx.Events, e.Spec.KillShake)
	events.PlaySound(ctx.Events, events.SoundHit)
	ctx.FX.Burst(e.Rect().Center())
	return true
}

func (e *Enemy) facing() float64 {
	if e.Flip {
		return -1
	}
	return 1
}

// groundAhead probes below the leading foot.
func (e *Enemy) groundAhead(ctx *Context) bool {
	r := e.Rect()
	probe := common.Vec{
		X: float64(r.CenterX()) + e.facing()*e.Spec.ProbeX,
		Y: e.Pos.Y + e.Spec.ProbeY,
	}
	_, solid := ctx.Tiles.SolidCheck(probe)
	return solid
}

// shootAt fires when the player is level with the enemy and in front of it.
func (e *Enemy) shootAt(ctx *Context, player *Player) {
	dx := player.Pos.X - e.Pos.X
	dy := player.Pos.Y - e.Pos.Y
	if math.Abs(dy) >= e.Spec.ShootBand {
		return
	}
	if (e.Flip && dx >= 0) || (!e.Flip && dx <= 0) {
		return
	}

	r := e.Rect()
	dir := e.facing()
	pos := common.Vec{X: float64(r.CenterX()) + dir*e.Spec.ProbeX, Y: float64(r.CenterY())}
	ctx.FX.SpawnProjectile(pos, dir*e.Spec.ProjectileSpeed)

	back := 0.0
	if e.Flip {
		back = math.Pi
	}
	for i := 0; i < 4; i++ {
		ctx.FX.SpawnSpark(pos, ctx.Rand.Float64()-0.5+back, 2+ctx.Rand.Float64())
	}
	events.PlaySound(ctx.Events, events.SoundShoot)
}

func (e *Enemy) AnimOffset() common.Vec {
	return common.Vec{X: e.Spec.AnimOffsetX, Y: e.Spec.AnimOffsetY}
}
