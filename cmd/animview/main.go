package main

import (
	"flag"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/component"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/render"
)

const viewSize = 256

// viewer plays the manifest animations one at a time. Left/right pick the
// animation, R restarts it.
type viewer struct {
	manifest *assets.Manifest
	atlas    *render.Atlas
	keys     []string
	current  int
	anim     *component.Animation
}

func (g *viewer) play(i int) {
	g.current = (i + len(g.keys)) % len(g.keys)
	g.anim = g.manifest.NewAnimation(g.keys[g.current])
}

func (g *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.play(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.play(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.play(g.current)
	}
	g.anim.Update()
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	frame := g.atlas.Frame(g.anim)
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	scale := float64(viewSize/2) / float64(max(fw, fh, 1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((viewSize-float64(fw)*scale)/2, (viewSize-float64(fh)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nimage %d/%d done=%v",
		g.anim.Key, g.anim.Img()+1, g.manifest.Animations[g.anim.Key].Frames, g.anim.Done()))
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	dataDir := flag.String("data", "data", "directory with images overriding the built-in ones")
	start := flag.String("anim", "player/idle", "animation to show first")
	flag.Parse()

	logger.Init()

	files := assets.Open(*dataDir)
	manifest, err := files.Manifest()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to read asset manifest")
	}

	g := &viewer{manifest: manifest, atlas: render.NewAtlas(files, manifest)}
	for key := range manifest.Animations {
		g.keys = append(g.keys, key)
	}
	sort.Strings(g.keys)
	if len(g.keys) == 0 {
		logger.Log.Fatal("manifest has no animations")
	}
	first := sort.SearchStrings(g.keys, *start)
	if first == len(g.keys) || g.keys[first] != *start {
		first = 0
	}
	g.play(first)

	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("ninja animations")
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("viewer stopped")
	}
}
