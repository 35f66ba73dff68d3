package effects

import (
	"math"

	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/component"
)

const (
	ParticleLeaf  = "leaf"
	ParticleSpark = "particle"
)

// Particle plays a one-shot animation while drifting with a fixed velocity.
type Particle struct {
	Kind     string
	Pos      common.Vec
	Velocity common.Vec
	Anim     *component.Animation
}

// Update reports true once the animation has finished. The check happens
// before advancing so the last image gets one full frame.
func (p *Particle) Update() bool {
	kill := p.Anim.Done()

	p.Pos = p.Pos.Add(p.Velocity)
	p.Anim.Update()

	if p.Kind == ParticleLeaf && p.Anim != nil {
		p.Pos.X += math.Sin(float64(p.Anim.Frame)*0.035) * 0.3
	}
	return kill
}
