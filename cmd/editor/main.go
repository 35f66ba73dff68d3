package main

import (
	"errors"
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/levels"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/tilemap"
)

func main() {
	dataDir := flag.String("data", "data", "directory with images and maps overriding the built-in ones")
	level := flag.Int("level", 0, "level to edit; saved to <data>/maps/<level>.json")
	file := flag.String("file", "", "edit this map file instead of a numbered level")
	scale := flag.Int("scale", 2, "window scale of the 320x240 view")
	flag.Parse()

	logger.Init()

	files := assets.Open(*dataDir)
	manifest, err := files.Manifest()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to read asset manifest")
	}

	m := tilemap.New(tilemap.DefaultTileSize)
	path := *file
	if path == "" {
		path = filepath.Join(*dataDir, "maps", levels.Name(*level))
		err = levels.Load(m, filepath.Dir(path), *level)
	} else {
		err = m.Load(path)
	}
	switch {
	case errors.Is(err, tilemap.ErrNotFound):
		logger.Log.WithField("path", path).Info("starting a new map")
	case err != nil:
		logger.Log.WithError(err).WithField("path", path).Fatal("failed to load map")
	}

	ed := NewEditor(files, manifest, m, path)

	ebiten.SetWindowSize(screenWidth*max(1, *scale), screenHeight*max(1, *scale))
	ebiten.SetWindowTitle("ninja editor")
	if err := ebiten.RunGame(ed); err != nil {
		logger.Log.WithError(err).Fatal("editor stopped")
	}
}
