package effects

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninja/common"
)

// Spark is a streak that flies along a fixed angle while its speed runs
// down to zero.
type Spark struct {
	Pos   common.Vec
	Angle float64
	Speed float64
}

// Update moves the spark and decays its speed by decay. It reports true
// once the spark has stopped.
func (s *Spark) Update(decay float64) bool {
	s.Pos = s.Pos.Add(cp.ForAngle(s.Angle).Mult(s.Speed))
	s.Speed = math.Max(0, s.Speed-decay)
	return s.Speed == 0
}

// Points returns the diamond outline in screen space: long along the
// direction of travel, narrow across it, both scaled by speed.
func (s *Spark) Points(offset common.Vec) [4]common.Vec {
	at := func(angle, length float64) common.Vec {
		return s.Pos.Add(cp.ForAngle(angle).Mult(s.Speed * length)).Sub(offset)
	}
	return [4]common.Vec{
		at(s.Angle, 3),
		at(s.Angle+math.Pi*0.5, 0.5),
		at(s.Angle+math.Pi, 3),
		at(s.Angle-math.Pi*0.5, 0.5),
	}
}
