package editor

import (
	"bytes"
	"math"

	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/tilemap"
)

const defaultMaxUndo = 100

// Session is the editing state behind the level editor: the map being
// edited, the brush, the view scroll and an undo history.
type Session struct {
	Map    *tilemap.Tilemap
	Path   string
	Scroll common.Vec
	OnGrid bool

	groups   []string
	manifest *assets.Manifest
	group    int
	variant  int

	undo    []tilemap.Document
	maxUndo int
}

func NewSession(m *tilemap.Tilemap, manifest *assets.Manifest, path string) *Session {
	return &Session{
		Map:      m,
		Path:     path,
		OnGrid:   true,
		groups:   manifest.TileTypes(),
		manifest: manifest,
		maxUndo:  defaultMaxUndo,
	}
}

// Brush is the tile type and variant that Place puts down.
func (s *Session) Brush() tilemap.TypeVariant {
	if len(s.groups) == 0 {
		return tilemap.TypeVariant{}
	}
	return tilemap.TypeVariant{Type: s.groups[s.group], Variant: s.variant}
}

// CycleGroup moves to another tile type and resets the variant.
func (s *Session) CycleGroup(delta int) {
	if len(s.groups) == 0 {
		return
	}
	s.group = wrap(s.group+delta, len(s.groups))
	s.variant = 0
}

func (s *Session) CycleVariant(delta int) {
	n := s.manifest.Variants(s.Brush().Type)
	if n == 0 {
		return
	}
	s.variant = wrap(s.variant+delta, n)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Place puts the brush at a world position: snapped to its cell on the
// grid, or as a free tile at the exact position. It reports whether the
// map changed.
func (s *Session) Place(world common.Vec) bool {
	brush := s.Brush()
	if brush.Type == "" {
		return false
	}
	if !s.OnGrid {
		s.snapshot()
		s.Map.AddOffgrid(tilemap.Tile{Type: brush.Type, Variant: brush.Variant, Pos: world})
		return true
	}
	cell := s.Map.Cell(world)
	if t, ok := s.Map.Get(cell); ok && t.Type == brush.Type && t.Variant == brush.Variant {
		return false
	}
	s.snapshot()
	s.Map.Set(cell, brush.Type, brush.Variant)
	return true
}

// Erase removes the grid tile under a world position and every free tile
// whose image covers it.
func (s *Session) Erase(world common.Vec) bool {
	cell := s.Map.Cell(world)
	_, onGrid := s.Map.Get(cell)

	var hits []int
	for i, t := range s.Map.Offgrid() {
		if s.tileRect(t).ContainsPoint(world) {
			hits = append(hits, i)
		}
	}
	if !onGrid && len(hits) == 0 {
		return false
	}

	s.snapshot()
	if onGrid {
		s.Map.Remove(cell)
	}
	for i := len(hits) - 1; i >= 0; i-- {
		s.Map.RemoveOffgrid(hits[i])
	}
	return true
}

func (s *Session) tileRect(t tilemap.Tile) common.Rect {
	spec := s.manifest.Tiles[t.Type]
	w, h := spec.Width, spec.Height
	if w <= 0 || h <= 0 {
		w, h = s.Map.TileSize, s.Map.TileSize
	}
	return common.Rect{X: int(math.Floor(t.Pos.X)), Y: int(math.Floor(t.Pos.Y)), Width: w, Height: h}
}

func (s *Session) Autotile() {
	s.snapshot()
	s.Map.Autotile()
}

func (s *Session) Save() error {
	return s.Map.Save(s.Path)
}

// Encode returns the level document, e.g. for the clipboard.
func (s *Session) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Map.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Session) snapshot() {
	s.undo = append(s.undo, s.Map.Document())
	if len(s.undo) > s.maxUndo {
		s.undo = s.undo[1:]
	}
}

// Undo restores the state before the latest edit.
func (s *Session) Undo() bool {
	n := len(s.undo)
	if n == 0 {
		return false
	}
	doc := s.undo[n-1]
	s.undo = s.undo[:n-1]
	return s.Map.Apply(doc) == nil
}

func (s *Session) UndoDepth() int {
	return len(s.undo)
}
