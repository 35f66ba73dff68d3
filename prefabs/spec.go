package prefabs

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WorldSpec tunes the shared simulation: physics, effects and the level flow.
type WorldSpec struct {
	Gravity            float64 `yaml:"gravity"`
	TerminalVelocity   float64 `yaml:"terminal_velocity"`
	SparkDecay         float64 `yaml:"spark_decay"`
	ProjectileLifetime int     `yaml:"projectile_lifetime"`
	HitShake           float64 `yaml:"hit_shake"`
	CameraSmoothing    float64 `yaml:"camera_smoothing"`
	LeafRate           float64 `yaml:"leaf_rate"`
	TransitionFrames   int     `yaml:"transition_frames"`
	DeathFadeFrame     int     `yaml:"death_fade_frame"`
	DeathReloadFrame   int     `yaml:"death_reload_frame"`
	ScreenWidth        int     `yaml:"screen_width"`
	ScreenHeight       int     `yaml:"screen_height"`
	Levels             int     `yaml:"levels"`
}

type PlayerSpec struct {
	Name            string  `yaml:"name"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	AnimOffsetX     float64 `yaml:"anim_offset_x"`
	AnimOffsetY     float64 `yaml:"anim_offset_y"`
	MaxJumps        int     `yaml:"max_jumps"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	WallJumpX       float64 `yaml:"wall_jump_x"`
	WallJumpY       float64 `yaml:"wall_jump_y"`
	WallSlideSpeed  float64 `yaml:"wall_slide_speed"`
	AirborneFrames  int     `yaml:"airborne_frames"`
	FallDeathFrames int     `yaml:"fall_death_frames"`
	DashFrames      int     `yaml:"dash_frames"`
	DashThreshold   int     `yaml:"dash_threshold"`
	DashSpeed       float64 `yaml:"dash_speed"`
	DashCut         float64 `yaml:"dash_cut"`
	Friction        float64 `yaml:"friction"`
	DeathShake      float64 `yaml:"death_shake"`
}

type EnemySpec struct {
	Name            string  `yaml:"name"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	AnimOffsetX     float64 `yaml:"anim_offset_x"`
	AnimOffsetY     float64 `yaml:"anim_offset_y"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	WalkChance      float64 `yaml:"walk_chance"`
	WalkMin         int     `yaml:"walk_min"`
	WalkMax         int     `yaml:"walk_max"`
	ProbeX          float64 `yaml:"probe_x"`
	ProbeY          float64 `yaml:"probe_y"`
	ShootBand       float64 `yaml:"shoot_band"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	KillShake       float64 `yaml:"kill_shake"`
	// PatrolScript names a tengo script under scripts/. Empty uses the
	// built-in random patrol.
	PatrolScript string `yaml:"patrol_script"`
}

var DefaultWorld = WorldSpec{
	Gravity:            0.1,
	TerminalVelocity:   5,
	SparkDecay:         0.1,
	ProjectileLifetime: 360,
	HitShake:           16,
	CameraSmoothing:    30,
	LeafRate:           49999,
	TransitionFrames:   30,
	DeathFadeFrame:     10,
	DeathReloadFrame:   40,
	ScreenWidth:        320,
	ScreenHeight:       240,
	Levels:             3,
}

var DefaultPlayer = PlayerSpec{
	Name:            "player",
	Width:           8,
	Height:          15,
	AnimOffsetX:     -3,
	AnimOffsetY:     -3,
	MaxJumps:        1,
	JumpSpeed:       3,
	WallJumpX:       3.5,
	WallJumpY:       2.5,
	WallSlideSpeed:  0.5,
	AirborneFrames:  4,
	FallDeathFrames: 120,
	DashFrames:      60,
	DashThreshold:   50,
	DashSpeed:       8,
	DashCut:         0.1,
	Friction:        0.1,
	DeathShake:      16,
}

var DefaultEnemy = EnemySpec{
	Name:            "enemy",
	Width:           8,
	Height:          15,
	AnimOffsetX:     -3,
	AnimOffsetY:     -3,
	WalkSpeed:       0.5,
	WalkChance:      0.01,
	WalkMin:         30,
	WalkMax:         120,
	ProbeX:          7,
	ProbeY:          23,
	ShootBand:       16,
	ProjectileSpeed: 1.5,
	KillShake:       16,
}

// LoadSpec decodes filename over defaults, so keys missing from the yaml
// keep their default value.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return defaults, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return defaults, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadWorldSpec() (WorldSpec, error) {
	return LoadSpec("world.yaml", DefaultWorld)
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec("player.yaml", DefaultPlayer)
}

func LoadEnemySpec() (EnemySpec, error) {
	return LoadSpec("enemy.yaml", DefaultEnemy)
}

// Specs is the full tuning set used by a simulation.
type Specs struct {
	World  WorldSpec
	Player PlayerSpec
	Enemy  EnemySpec
}

func Defaults() Specs {
	return Specs{World: DefaultWorld, Player: DefaultPlayer, Enemy: DefaultEnemy}
}

func LoadAll() (Specs, error) {
	var s Specs
	var err error
	if s.World, err = LoadWorldSpec(); err != nil {
		return Defaults(), err
	}
	if s.Player, err = LoadPlayerSpec(); err != nil {
		return Defaults(), err
	}
	if s.Enemy, err = LoadEnemySpec(); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Reload refreshes the spec backed by path, as reported by a Watcher. It
// reports whether path named a known spec file. On error the previous value
// is kept.
func (s *Specs) Reload(path string) (bool, error) {
	switch filepath.Base(path) {
	case "world.yaml":
		return true, reload(&s.World, "world.yaml", DefaultWorld)
	case "player.yaml":
		return true, reload(&s.Player, "player.yaml", DefaultPlayer)
	case "enemy.yaml":
		return true, reload(&s.Enemy, "enemy.yaml", DefaultEnemy)
	}
	return false, nil
}

func reload[T any](dst *T, filename string, defaults T) error {
	spec, err := LoadSpec(filename, defaults)
	if err != nil {
		return err
	}
	*dst = spec
	return nil
}
