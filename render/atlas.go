package render

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/component"
	"github.com/milk9111/ninja/logger"
	"golang.org/x/image/colornames"
)

// Atlas holds every decoded image the manifest names. Files that cannot be
// read are replaced by flat placeholders so the game runs without art.
type Atlas struct {
	tiles  map[string][]*ebiten.Image
	anims  map[string][]*ebiten.Image
	images map[string]*ebiten.Image

	missing *ebiten.Image
}

func NewAtlas(files *assets.Files, m *assets.Manifest) *Atlas {
	a := &Atlas{
		tiles:   make(map[string][]*ebiten.Image, len(m.Tiles)),
		anims:   make(map[string][]*ebiten.Image, len(m.Animations)),
		images:  make(map[string]*ebiten.Image, len(m.Images)),
		missing: placeholder(8, 8, colornames.Magenta),
	}

	for name, spec := range m.Tiles {
		a.tiles[name] = loadSequence(files, name, spec.Dir, spec.Variants, spec.Width, spec.Height, spec.Color.Or(colornames.Gray))
	}
	for key, spec := range m.Animations {
		a.anims[key] = loadSequence(files, key, spec.Dir, spec.Frames, spec.Width, spec.Height, spec.Color.Or(colornames.White))
	}
	for name, spec := range m.Images {
		img, err := loadImage(files, spec.File)
		if err != nil {
			logger.Log.WithField("image", name).Debug("using placeholder")
			img = placeholder(spec.Width, spec.Height, spec.Color.Or(colornames.Gray))
		}
		a.images[name] = img
	}
	return a
}

func loadSequence(files *assets.Files, name, dir string, n, w, h int, fill color.Color) []*ebiten.Image {
	out := make([]*ebiten.Image, n)
	fallback := 0
	for i := range out {
		img, err := loadImage(files, assets.FramePath(dir, i))
		if err != nil {
			img = placeholder(w, h, shade(fill, i))
			fallback++
		}
		out[i] = img
	}
	if fallback > 0 {
		logger.Log.WithField("sequence", name).WithField("placeholders", fallback).Debug("using placeholders")
	}
	return out
}

func loadImage(files *assets.Files, path string) (*ebiten.Image, error) {
	b, err := files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func placeholder(w, h int, fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(1, w), max(1, h))
	img.Fill(fill)
	return img
}

// shade darkens successive frames a little so placeholder animations and
// tile variants stay distinguishable.
func shade(c color.Color, i int) color.Color {
	r, g, b, a := c.RGBA()
	k := uint32(100 - (i%4)*8)
	return color.RGBA64{
		R: uint16(r * k / 100),
		G: uint16(g * k / 100),
		B: uint16(b * k / 100),
		A: uint16(a),
	}
}

// Tile returns the image for a tile, or a magenta square for unknown types.
func (a *Atlas) Tile(tileType string, variant int) *ebiten.Image {
	seq := a.tiles[tileType]
	if variant < 0 || variant >= len(seq) {
		return a.missing
	}
	return seq[variant]
}

// Frame returns the current image of an animation.
func (a *Atlas) Frame(anim *component.Animation) *ebiten.Image {
	if anim == nil {
		return a.missing
	}
	seq := a.anims[anim.Key]
	if len(seq) == 0 {
		return a.missing
	}
	return seq[min(anim.Img(), len(seq)-1)]
}

func (a *Atlas) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	return a.missing
}
