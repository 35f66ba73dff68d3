package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/effects"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/physics"
	"github.com/milk9111/ninja/prefabs"
)

type Player struct {
	physics.Body
	Spec prefabs.PlayerSpec

	AirTime   int
	Jumps     int
	WallSlide bool
	// Dashing is a signed countdown; the sign is the dash direction.
	Dashing int
	// Dead counts frames since death. The simulation advances it.
	Dead int
}

func NewPlayer(pos common.Vec, spec prefabs.PlayerSpec, cfg physics.Config) *Player {
	return &Player{
		Body:  physics.NewBody(pos, spec.Width, spec.Height, cfg),
		Spec:  spec,
		Jumps: spec.MaxJumps,
	}
}

func (p *Player) Update(ctx *Context, movement common.Vec) {
	p.Body.Update(ctx.Tiles, movement)

	p.AirTime++
	if p.AirTime > p.Spec.FallDeathFrames {
		if p.Dead == 0 {
			events.Shake(ctx.Events, p.Spec.DeathShake)
		}
		p.Dead++
	}

	if p.Collisions.Down {
		p.AirTime = 0
		p.Jumps = p.Spec.MaxJumps
	}

	p.WallSlide = false
	if (p.Collisions.Right || p.Collisions.Left) && p.AirTime > p.Spec.AirborneFrames {
		p.WallSlide = true
		p.Velocity.Y = math.Min(p.Velocity.Y, p.Spec.WallSlideSpeed)
		p.Flip = p.Collisions.Left
		p.SetAnimation(ctx.Anims, "player/wall_slide")
	}

	if !p.WallSlide {
		switch {
		case p.AirTime > p.Spec.AirborneFrames:
			p.SetAnimation(ctx.Anims, "player/jump")
		case movement.X != 0:
			p.SetAnimation(ctx.Anims, "player/run")
		default:
			p.SetAnimation(ctx.Anims, "player/idle")
		}
	}

	p.updateDash(ctx)

	p.Velocity.X = common.Approach(p.Velocity.X, p.Spec.Friction)
}

func (p *Player) updateDash(ctx *Context) {
	mag := p.DashMagnitude()
	if mag == p.Spec.DashFrames || mag == p.Spec.DashThreshold {
		center := p.Rect().Center()
		for i := 0; i < 20; i++ {
			angle := ctx.Rand.Float64() * math.Pi * 2
			speed := ctx.Rand.Float64()*0.5 + 0.5
			vel := cp.ForAngle(angle).Mult(speed)
			ctx.FX.SpawnParticle(effects.ParticleSpark, center, vel, ctx.Rand.IntN(8))
		}
	}

	switch {
	case p.Dashing > 0:
		p.Dashing--
	case p.Dashing < 0:
		p.Dashing++
	}

	if p.DashMagnitude() > p.Spec.DashThreshold {
		dir := common.Sign(float64(p.Dashing))
		p.Velocity.X = dir * p.Spec.DashSpeed
		if p.DashMagnitude() == p.Spec.DashThreshold+1 {
			p.Velocity.X *= p.Spec.DashCut
		}
		vel := common.Vec{X: dir * ctx.Rand.Float64() * 3}
		ctx.FX.SpawnParticle(effects.ParticleSpark, p.Rect().Center(), vel, ctx.Rand.IntN(8))
	}
}

// Jump reports whether a jump happened. Off a wall the push goes away from
// the wall and is only taken while the latest intent still presses into it.
func (p *Player) Jump(ctx *Context) bool {
	if p.WallSlide {
		var dir float64
		switch {
		case p.Flip && p.LastMovement.X < 0:
			dir = 1
		case !p.Flip && p.LastMovement.X > 0:
			dir = -1
		default:
			return false
		}
		p.Velocity.X = dir * p.Spec.WallJumpX
		p.Velocity.Y = -p.Spec.WallJumpY
		p.AirTime = p.Spec.AirborneFrames + 1
		p.Jumps = max(0, p.Jumps-1)
		events.PlaySound(ctx.Events, events.SoundJump)
		return true
	}

	if p.Jumps <= 0 {
		return false
	}
	p.Velocity.Y = -p.Spec.JumpSpeed
	p.Jumps--
	p.AirTime = p.Spec.AirborneFrames + 1
	events.PlaySound(ctx.Events, events.SoundJump)
	return true
}

// Dash starts a dash in the facing direction unless one is running.
func (p *Player) Dash(ctx *Context) bool {
	if p.Dashing != 0 {
		return false
	}
	events.PlaySound(ctx.Events, events.SoundDash)
	p.Dashing = p.Spec.DashFrames
	if p.Flip {
		p.Dashing = -p.Spec.DashFrames
	}
	return true
}

func (p *Player) DashMagnitude() int {
	return common.Abs(p.Dashing)
}

// Invulnerable is true during the fast part of a dash.
func (p *Player) Invulnerable() bool {
	return p.DashMagnitude() > p.Spec.DashThreshold
}

// Hit kills the player.
func (p *Player) Hit() {
	p.Kill()
}

// Kill starts the death counter. Further calls do nothing.
func (p *Player) Kill() {
	if p.Dead == 0 {
		p.Dead = 1
	}
}

// Visible is false while dead or during the fast part of a dash.
func (p *Player) Visible() bool {
	return p.Dead == 0 && !p.Invulnerable()
}

func (p *Player) AnimOffset() common.Vec {
	return common.Vec{X: p.Spec.AnimOffsetX, Y: p.Spec.AnimOffsetY}
}
