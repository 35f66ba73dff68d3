package entity

import (
	"math/rand/v2"

	"github.com/milk9111/ninja/component"
	"github.com/milk9111/ninja/effects"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/tilemap"
)

// Context carries the per-level collaborators entities act on.
type Context struct {
	Tiles  *tilemap.Tilemap
	FX     *effects.Effects
	Events events.Sink
	Rand   *rand.Rand
	Anims  component.AnimationSource
}
