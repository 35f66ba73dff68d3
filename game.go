package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/audio"
	"github.com/milk9111/ninja/input"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/prefabs"
	"github.com/milk9111/ninja/render"
	"github.com/milk9111/ninja/sim"
)

type Options struct {
	Level    int
	DataDir  string
	LevelDir string
	Watch    bool
	Debug    bool
}

type Game struct {
	sim      *sim.Simulation
	input    *input.Input
	renderer *render.Renderer
	mixer    *audio.Mixer
	watcher  *prefabs.Watcher
	specs    prefabs.Specs

	w, h int
}

func NewGame(opts Options) (*Game, error) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	files := assets.Open(opts.DataDir)
	manifest, err := files.Manifest()
	if err != nil {
		return nil, err
	}

	s, err := sim.New(sim.Config{
		Specs:    specs,
		Anims:    manifest,
		LevelDir: opts.LevelDir,
		Seed:     uint64(time.Now().UnixNano()),
	})
	if err != nil {
		return nil, err
	}
	if err := s.LoadLevel(opts.Level); err != nil {
		return nil, err
	}

	g := &Game{
		sim:   s,
		input: input.New(),
		mixer: audio.New(files, manifest),
		specs: specs,
		w:     specs.World.ScreenWidth,
		h:     specs.World.ScreenHeight,
	}
	g.renderer = render.NewRenderer(render.NewAtlas(files, manifest), g.w, g.h)
	g.renderer.Debug = opts.Debug

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			logger.Log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	g.mixer.StartLoops()
	return g, nil
}

func (g *Game) Update() error {
	g.reloadChanged()

	in := g.input.Poll()
	if g.input.Quit {
		return ebiten.Termination
	}

	evts, err := g.sim.Update(in)
	if err != nil {
		return err
	}
	g.mixer.Handle(evts)
	return nil
}

// reloadChanged applies prefab edits reported by the watcher. A bad edit is
// logged and the previous tuning stays in effect.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	names, err := g.watcher.Poll()
	if err != nil {
		logger.Log.WithError(err).Warn("prefab watcher")
	}
	for _, name := range names {
		log := logger.Log.WithField("file", filepath.Base(name))
		next := g.specs
		if !strings.EqualFold(filepath.Ext(name), ".tengo") {
			if known, err := next.Reload(name); !known {
				continue
			} else if err != nil {
				log.WithError(err).Warn("reload failed")
				continue
			}
		}
		if err := g.sim.ApplySpecs(next); err != nil {
			log.WithError(err).Warn("reload failed")
			continue
		}
		g.specs = next
		log.Info("reloaded")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
