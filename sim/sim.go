package sim

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/milk9111/ninja/camera"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/component"
	"github.com/milk9111/ninja/effects"
	"github.com/milk9111/ninja/entity"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/levels"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/physics"
	"github.com/milk9111/ninja/prefabs"
	"github.com/milk9111/ninja/tilemap"
)

var (
	playerSpawner = tilemap.TypeVariant{Type: "spawners", Variant: 0}
	enemySpawner  = tilemap.TypeVariant{Type: "spawners", Variant: 1}
	leafTree      = tilemap.TypeVariant{Type: "large_decor", Variant: 2}
)

// Intent is the player's input for one frame.
type Intent struct {
	Left, Right bool
	Jump, Dash  bool
}

func (in Intent) Movement() common.Vec {
	var x float64
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	return common.Vec{X: x}
}

type Config struct {
	Specs prefabs.Specs
	Anims component.AnimationSource
	// LevelDir holds level documents that override the embedded ones.
	LevelDir string
	Seed     uint64
}

// Simulation runs the game world one fixed tick at a time. It owns the tile
// store, the entities and the effect pools; the presentation layer only
// reads them between ticks.
type Simulation struct {
	specs  prefabs.Specs
	anims  component.AnimationSource
	dir    string
	patrol entity.PatrolPolicy

	rng   *rand.Rand
	queue events.Queue
	tiles *tilemap.Tilemap
	fx    *effects.Effects
	cam   *camera.Camera
	ctx   entity.Context

	player  *entity.Player
	enemies []*entity.Enemy
	leaves  []common.Rect

	level      int
	levelCount int
	transition int
}

func New(cfg Config) (*Simulation, error) {
	s := &Simulation{
		anims: cfg.Anims,
		dir:   cfg.LevelDir,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		tiles: tilemap.New(tilemap.DefaultTileSize),
	}
	s.levelCount = max(1, levels.Count())
	s.fx = effects.New(cfg.Anims, s.rng, &s.queue, effects.DefaultConfig)
	s.cam = camera.New(cfg.Specs.World.ScreenWidth, cfg.Specs.World.ScreenHeight, cfg.Specs.World.CameraSmoothing)
	s.ctx = entity.Context{Tiles: s.tiles, FX: s.fx, Events: &s.queue, Rand: s.rng, Anims: cfg.Anims}
	if err := s.ApplySpecs(cfg.Specs); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplySpecs swaps in new tuning. Running entities pick it up immediately.
func (s *Simulation) ApplySpecs(specs prefabs.Specs) error {
	patrol, err := entity.NewPatrol(specs.Enemy)
	if err != nil {
		return err
	}
	s.specs = specs
	s.patrol = patrol
	s.fx.Config = effects.Config{
		SparkDecay:         specs.World.SparkDecay,
		ProjectileLifetime: specs.World.ProjectileLifetime,
		HitShake:           specs.World.HitShake,
	}
	s.cam.SetSmooth(specs.World.CameraSmoothing)

	cfg := s.physicsConfig()
	if s.player != nil {
		s.player.Spec = specs.Player
		s.player.Config = cfg
	}
	for _, e := range s.enemies {
		e.Spec = specs.Enemy
		e.Config = cfg
		e.Patrol = patrol
	}
	return nil
}

func (s *Simulation) physicsConfig() physics.Config {
	return physics.Config{Gravity: s.specs.World.Gravity, TerminalVelocity: s.specs.World.TerminalVelocity}
}

// LoadLevel replaces the world with level id. A missing level leaves an
// empty map; only a corrupt document is an error.
func (s *Simulation) LoadLevel(id int) error {
	log := logger.Log.WithField("level", id)

	err := levels.Load(s.tiles, s.dir, id)
	switch {
	case errors.Is(err, tilemap.ErrNotFound):
		log.Warn("level not found, starting empty")
	case err != nil:
		return err
	}
	s.level = id

	s.leaves = s.leaves[:0]
	for _, tree := range s.tiles.Extract([]tilemap.TypeVariant{leafTree}, true) {
		r := common.RectAt(tree.Pos, 23, 13)
		r.X += 4
		r.Y += 4
		s.leaves = append(s.leaves, r)
	}

	cfg := s.physicsConfig()
	s.player = entity.NewPlayer(common.Vec{}, s.specs.Player, cfg)
	s.enemies = nil
	for _, sp := range s.tiles.Extract([]tilemap.TypeVariant{playerSpawner, enemySpawner}, false) {
		if sp.Variant == playerSpawner.Variant {
			s.player.Pos = sp.Pos
			continue
		}
		s.enemies = append(s.enemies, entity.NewEnemy(sp.Pos, s.specs.Enemy, cfg, s.patrol))
	}

	s.fx.Clear()
	_ = s.queue.Drain()
	s.cam.SnapTo(s.player.Rect().Center())
	s.transition = -s.specs.World.TransitionFrames

	log.WithField("enemies", len(s.enemies)).Info("level loaded")
	return nil
}

// Update advances one tick and returns the sound events it produced.
// Shake events are consumed by the camera.
func (s *Simulation) Update(in Intent) ([]events.Event, error) {
	s.fx.Compact()
	s.cam.Decay()

	world := s.specs.World
	if len(s.enemies) == 0 {
		s.transition++
		if s.transition > world.TransitionFrames {
			next := min(s.level+1, s.levelCount-1)
			if err := s.LoadLevel(next); err != nil {
				return nil, err
			}
		}
	}
	if s.transition < 0 {
		s.transition++
	}

	if s.player.Dead > 0 {
		s.player.Dead++
		if s.player.Dead >= world.DeathFadeFrame {
			s.transition = min(world.TransitionFrames, s.transition+1)
		}
		if s.player.Dead > world.DeathReloadFrame {
			if err := s.LoadLevel(s.level); err != nil {
				return nil, err
			}
		}
	}

	s.cam.Update(s.player.Rect().Center())
	s.spawnLeaves()

	alive := s.enemies[:0:0]
	for _, e := range s.enemies {
		if !e.Update(&s.ctx, s.player) {
			alive = append(alive, e)
		}
	}
	s.enemies = alive

	if s.player.Dead == 0 {
		s.player.Update(&s.ctx, in.Movement())
	}

	s.fx.Update(s.tiles, s.player)

	if s.player.Dead == 0 {
		if in.Jump {
			s.player.Jump(&s.ctx)
		}
		if in.Dash {
			s.player.Dash(&s.ctx)
		}
	}

	return s.drainEvents(), nil
}

func (s *Simulation) spawnLeaves() {
	rate := s.specs.World.LeafRate
	for _, r := range s.leaves {
		area := float64(r.Width * r.Height)
		if s.rng.Float64()*rate >= area {
			continue
		}
		pos := common.Vec{
			X: float64(r.X) + s.rng.Float64()*float64(r.Width),
			Y: float64(r.Y) + s.rng.Float64()*float64(r.Height),
		}
		s.fx.SpawnParticle(effects.ParticleLeaf, pos, common.Vec{X: -0.1, Y: 0.3}, s.rng.IntN(21))
	}
}

func (s *Simulation) drainEvents() []events.Event {
	var out []events.Event
	for _, e := range s.queue.Drain() {
		if e.Kind == events.KindShake {
			s.cam.Shake(e.Magnitude)
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Simulation) Tiles() *tilemap.Tilemap   { return s.tiles }
func (s *Simulation) Player() *entity.Player    { return s.player }
func (s *Simulation) Enemies() []*entity.Enemy  { return s.enemies }
func (s *Simulation) Effects() *effects.Effects { return s.fx }
func (s *Simulation) Camera() *camera.Camera    { return s.cam }
func (s *Simulation) Level() int                { return s.level }
func (s *Simulation) Specs() prefabs.Specs      { return s.specs }

// Transition runs from -TransitionFrames (opening) through 0 (fully open)
// to TransitionFrames (closed).
func (s *Simulation) Transition() int { return s.transition }

// TransitionRadius is the radius of the visible circle for the current
// transition, or a negative value when the view is fully open.
func (s *Simulation) TransitionRadius() float64 {
	if s.transition == 0 {
		return -1
	}
	frames := float64(s.specs.World.TransitionFrames)
	return (frames - math.Abs(float64(s.transition))) * 8
}
