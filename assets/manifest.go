package assets

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/ninja/component"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Manifest describes every image sequence and sound the game uses. Paths
// are relative to the data directory; missing files are replaced by
// placeholders built from Color and the declared size.
type Manifest struct {
	Tiles      map[string]TileSpec      `yaml:"tiles"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Images     map[string]ImageSpec     `yaml:"images"`
	Sounds     map[string]SoundSpec     `yaml:"sounds"`
}

// TileSpec is a tile type: Dir holds 0.png, 1.png ... one per variant.
type TileSpec struct {
	Dir      string `yaml:"dir"`
	Variants int    `yaml:"variants"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Color    Color  `yaml:"color"`
}

// AnimationSpec is an animation keyed like "player/run". Dir holds the
// numbered frames.
type AnimationSpec struct {
	Dir      string `yaml:"dir"`
	Frames   int    `yaml:"frames"`
	Duration int    `yaml:"duration"`
	OneShot  bool   `yaml:"one_shot"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Color    Color  `yaml:"color"`
}

type ImageSpec struct {
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  Color  `yaml:"color"`
}

type SoundSpec struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// Color accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// Or returns c, or def when c was never set.
func (c Color) Or(def color.Color) color.Color {
	if c.Color == nil {
		return def
	}
	return c.Color
}

func ParseColor(s string) (color.Color, error) {
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", s)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color format: %s", s)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: unmarshal manifest: %w", err)
	}
	for name, t := range m.Tiles {
		if t.Variants < 1 {
			return nil, fmt.Errorf("assets: tile type %q has no variants", name)
		}
	}
	for key, a := range m.Animations {
		if a.Frames < 1 {
			return nil, fmt.Errorf("assets: animation %q has no frames", key)
		}
	}
	return &m, nil
}

// NewAnimation returns a fresh animation for key, or nil if the manifest
// does not declare it.
func (m *Manifest) NewAnimation(key string) *component.Animation {
	a, ok := m.Animations[key]
	if !ok {
		return nil
	}
	return component.NewAnimation(key, a.Frames, a.Duration, !a.OneShot)
}

// TileTypes lists the tile types in name order, the editor's group order.
func (m *Manifest) TileTypes() []string {
	names := make([]string, 0, len(m.Tiles))
	for name := range m.Tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manifest) Variants(tileType string) int {
	return m.Tiles[tileType].Variants
}

var _ component.AnimationSource = (*Manifest)(nil)
