package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ninja/logger"
)

func main() {
	level := flag.Int("level", 0, "level to start on")
	scale := flag.Int("scale", 2, "window scale of the 320x240 screen")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml and scripts when they change on disk")
	dataDir := flag.String("data", "data", "directory with images, sfx and maps overriding the built-in ones")
	debug := flag.Bool("debug", false, "draw collision boxes and counters")
	flag.Parse()

	logger.Init()

	game, err := NewGame(Options{
		Level:    *level,
		DataDir:  *dataDir,
		LevelDir: filepath.Join(*dataDir, "maps"),
		Watch:    *watch,
		Debug:    *debug,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start")
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w*max(1, *scale), h*max(1, *scale))
	ebiten.SetWindowTitle("ninja")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
