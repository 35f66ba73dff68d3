package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/ninja/prefabs"
)

func TestRandomPatrolRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	always := RandomPatrol{Chance: 1, WalkMin: 30, WalkMax: 120}
	for i := 0; i < 500; i++ {
		if w := always.NextWalk(rng); w < 30 || w > 120 {
			t.Fatalf("walk %d outside 30..120", w)
		}
	}
	never := RandomPatrol{Chance: 0, WalkMin: 30, WalkMax: 120}
	for i := 0; i < 100; i++ {
		if w := never.NextWalk(rng); w != 0 {
			t.Fatalf("zero chance should never walk, got %d", w)
		}
	}
}

func TestScriptPatrol(t *testing.T) {
	spec := prefabs.DefaultEnemy
	spec.PatrolScript = "patrol.tengo"
	rng := rand.New(rand.NewPCG(5, 6))

	t.Run("always", func(t *testing.T) {
		s := spec
		s.WalkChance = 1
		p, err := LoadScriptPatrol(s)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		for i := 0; i < 50; i++ {
			if w := p.NextWalk(rng); w < s.WalkMin || w > s.WalkMax {
				t.Fatalf("walk %d outside %d..%d", w, s.WalkMin, s.WalkMax)
			}
		}
	})

	t.Run("never", func(t *testing.T) {
		s := spec
		s.WalkChance = 0
		p, err := NewPatrol(s)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, ok := p.(*ScriptPatrol); !ok {
			t.Fatalf("expected a script policy, got %T", p)
		}
		for i := 0; i < 50; i++ {
			if w := p.NextWalk(rng); w != 0 {
				t.Fatalf("expected idle, got %d", w)
			}
		}
	})

	t.Run("compile_error", func(t *testing.T) {
		if _, err := NewScriptPatrol("bad.tengo", []byte("walk = ("), spec); err == nil {
			t.Fatalf("expected a compile error")
		}
	})

	t.Run("runtime_error_falls_back", func(t *testing.T) {
		s := spec
		s.WalkChance = 1
		p, err := NewScriptPatrol("div.tengo", []byte("zero := 0\nwalk = 1 / zero"), s)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		for i := 0; i < 20; i++ {
			if w := p.NextWalk(rng); w < s.WalkMin || w > s.WalkMax {
				t.Fatalf("failed script should use the random policy, got %d", w)
			}
		}
	})

	t.Run("default_is_random", func(t *testing.T) {
		p, err := NewPatrol(prefabs.DefaultEnemy)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if _, ok := p.(RandomPatrol); !ok {
			t.Fatalf("expected RandomPatrol, got %T", p)
		}
	})
}
