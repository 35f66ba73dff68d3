package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/prefabs"
)

// PatrolPolicy decides, once per idle frame, whether an enemy starts a walk
// and for how many frames. Zero keeps it idle.
type PatrolPolicy interface {
	NextWalk(rng *rand.Rand) int
}

// RandomPatrol starts a walk of WalkMin..WalkMax frames with probability
// Chance per frame.
type RandomPatrol struct {
	Chance  float64
	WalkMin int
	WalkMax int
}

func NewRandomPatrol(spec prefabs.EnemySpec) RandomPatrol {
	return RandomPatrol{Chance: spec.WalkChance, WalkMin: spec.WalkMin, WalkMax: spec.WalkMax}
}

func (p RandomPatrol) NextWalk(rng *rand.Rand) int {
	if rng.Float64() >= p.Chance {
		return 0
	}
	return p.WalkMin + rng.IntN(max(1, p.WalkMax-p.WalkMin+1))
}

// ScriptPatrol runs a tengo script each idle frame. The script sees roll and
// pick (uniform in [0, 1)) plus chance, walk_min and walk_max, and sets walk.
type ScriptPatrol struct {
	Name     string
	compiled *tengo.Compiled
	fallback RandomPatrol
}

func NewScriptPatrol(name string, src []byte, spec prefabs.EnemySpec) (*ScriptPatrol, error) {
	script := tengo.NewScript(src)
	vars := []struct {
		name  string
		value any
	}{
		{"roll", 0.0},
		{"pick", 0.0},
		{"chance", spec.WalkChance},
		{"walk_min", spec.WalkMin},
		{"walk_max", spec.WalkMax},
		{"walk", 0},
	}
	for _, v := range vars {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("entity: patrol script %s: add %s: %w", name, v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("entity: compile patrol script %s: %w", name, err)
	}
	return &ScriptPatrol{Name: name, compiled: compiled, fallback: NewRandomPatrol(spec)}, nil
}

// LoadScriptPatrol compiles a script from the prefabs scripts directory.
func LoadScriptPatrol(spec prefabs.EnemySpec) (*ScriptPatrol, error) {
	src, err := prefabs.LoadScript(spec.PatrolScript)
	if err != nil {
		return nil, fmt.Errorf("entity: load patrol script %s: %w", spec.PatrolScript, err)
	}
	return NewScriptPatrol(spec.PatrolScript, src, spec)
}

// NextWalk falls back to the random policy if the script fails at runtime.
func (p *ScriptPatrol) NextWalk(rng *rand.Rand) int {
	log := logger.Log.WithField("script", p.Name)
	for _, name := range []string{"roll", "pick"} {
		if err := p.compiled.Set(name, rng.Float64()); err != nil {
			log.WithError(err).Warn("patrol script input rejected")
			return p.fallback.NextWalk(rng)
		}
	}
	if err := p.compiled.Run(); err != nil {
		log.WithError(err).Warn("patrol script failed")
		return p.fallback.NextWalk(rng)
	}
	return max(0, p.compiled.Get("walk").Int())
}

// NewPatrol returns the script policy named by spec, or the random policy.
func NewPatrol(spec prefabs.EnemySpec) (PatrolPolicy, error) {
	if spec.PatrolScript == "" {
		return NewRandomPatrol(spec), nil
	}
	return LoadScriptPatrol(spec)
}
