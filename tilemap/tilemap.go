package tilemap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/ninja/common"
)

const DefaultTileSize = 16

// GridPos identifies one tile cell. It is the grid map key; its text form
// "x;y" is only used by the level document.
type GridPos struct {
	X, Y int
}

func (p GridPos) String() string {
	return strconv.Itoa(p.X) + ";" + strconv.Itoa(p.Y)
}

func (p GridPos) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *GridPos) UnmarshalText(b []byte) error {
	parsed, err := ParseGridPos(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseGridPos parses the "x;y" form written by GridPos.String.
func ParseGridPos(s string) (GridPos, error) {
	xs, ys, ok := strings.Cut(s, ";")
	if !ok {
		return GridPos{}, fmt.Errorf("tilemap: grid key %q: missing ';'", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return GridPos{}, fmt.Errorf("tilemap: grid key %q: %w", s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return GridPos{}, fmt.Errorf("tilemap: grid key %q: %w", s, err)
	}
	return GridPos{X: x, Y: y}, nil
}

func (p GridPos) Add(o GridPos) GridPos {
	return GridPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Tile is either a grid tile (Pos in grid units, equal to its key) or a free
// tile (Pos in pixels).
type Tile struct {
	Type    string
	Variant int
	Pos     common.Vec
}

// TypeVariant selects tiles for Extract.
type TypeVariant struct {
	Type    string
	Variant int
}

// neighborOffsets is the fixed 3x3 window visited by TilesAround.
var neighborOffsets = [9]GridPos{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

var physicsTiles = map[string]bool{
	"grass": true,
	"stone": true,
}

var autotileTypes = map[string]bool{
	"grass": true,
	"stone": true,
}

// IsPhysicsType reports whether tiles of this type block movement.
func IsPhysicsType(t string) bool {
	return physicsTiles[t]
}

// Tilemap owns every tile of a level: the sparse collision grid and the
// free-floating decoration tiles drawn underneath it.
type Tilemap struct {
	TileSize int

	grid    map[GridPos]Tile
	offgrid []Tile
}

func New(tileSize int) *Tilemap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tilemap{
		TileSize: tileSize,
		grid:     make(map[GridPos]Tile),
	}
}

// Cell converts a pixel position to the grid cell containing it.
func (m *Tilemap) Cell(pos common.Vec) GridPos {
	ts := float64(m.TileSize)
	return GridPos{X: int(math.Floor(pos.X / ts)), Y: int(math.Floor(pos.Y / ts))}
}

// Set places a grid tile, replacing whatever was in the cell.
func (m *Tilemap) Set(pos GridPos, tileType string, variant int) {
	m.grid[pos] = Tile{Type: tileType, Variant: variant, Pos: common.Vec{X: float64(pos.X), Y: float64(pos.Y)}}
}

func (m *Tilemap) Get(pos GridPos) (Tile, bool) {
	t, ok := m.grid[pos]
	return t, ok
}

// Remove deletes the grid tile at pos and reports whether one existed.
func (m *Tilemap) Remove(pos GridPos) bool {
	if _, ok := m.grid[pos]; !ok {
		return false
	}
	delete(m.grid, pos)
	return true
}

func (m *Tilemap) AddOffgrid(t Tile) {
	m.offgrid = append(m.offgrid, t)
}

// RemoveOffgrid deletes the free tile at index i.
func (m *Tilemap) RemoveOffgrid(i int) bool {
	if i < 0 || i >= len(m.offgrid) {
		return false
	}
	m.offgrid = append(m.offgrid[:i], m.offgrid[i+1:]...)
	return true
}

// Len returns the number of grid tiles.
func (m *Tilemap) Len() int {
	return len(m.grid)
}

// Offgrid returns a copy of the free tiles in draw order.
func (m *Tilemap) Offgrid() []Tile {
	return append([]Tile(nil), m.offgrid...)
}

// GridTiles returns a copy of the grid tiles in row-major order.
func (m *Tilemap) GridTiles() []Tile {
	keys := m.sortedKeys()
	out := make([]Tile, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.grid[k])
	}
	return out
}

func (m *Tilemap) Clear() {
	m.grid = make(map[GridPos]Tile)
	m.offgrid = nil
}

func (m *Tilemap) sortedKeys() []GridPos {
	keys := make([]GridPos, 0, len(m.grid))
	for k := range m.grid {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// TilesAround returns the grid tiles in the 3x3 window around the cell that
// contains pos.
func (m *Tilemap) TilesAround(pos common.Vec) []Tile {
	center := m.Cell(pos)
	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := m.grid[center.Add(off)]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// PhysicsRectsAround returns the solid tile rectangles near pos.
func (m *Tilemap) PhysicsRectsAround(pos common.Vec) []common.Rect {
	var rects []common.Rect
	for _, t := range m.TilesAround(pos) {
		if !physicsTiles[t.Type] {
			continue
		}
		rects = append(rects, common.Rect{
			X:      int(t.Pos.X) * m.TileSize,
			Y:      int(t.Pos.Y) * m.TileSize,
			Width:  m.TileSize,
			Height: m.TileSize,
		})
	}
	return rects
}

// SolidCheck returns the physics tile occupying the cell at pos, if any.
func (m *Tilemap) SolidCheck(pos common.Vec) (Tile, bool) {
	t, ok := m.grid[m.Cell(pos)]
	if !ok || !physicsTiles[t.Type] {
		return Tile{}, false
	}
	return t, true
}

// Extract returns copies of every tile matching one of pairs: free tiles
// first in draw order, then grid tiles in row-major order with their
// position converted to pixels. Unless keep is set the matches are removed.
func (m *Tilemap) Extract(pairs []TypeVariant, keep bool) []Tile {
	want := make(map[TypeVariant]bool, len(pairs))
	for _, p := range pairs {
		want[p] = true
	}

	var matches []Tile

	remaining := make([]Tile, 0, len(m.offgrid))
	for _, t := range m.offgrid {
		if !want[TypeVariant{Type: t.Type, Variant: t.Variant}] {
			remaining = append(remaining, t)
			continue
		}
		matches = append(matches, t)
		if keep {
			remaining = append(remaining, t)
		}
	}
	m.offgrid = remaining

	for _, k := range m.sortedKeys() {
		t := m.grid[k]
		if !want[TypeVariant{Type: t.Type, Variant: t.Variant}] {
			continue
		}
		matched := t
		matched.Pos = t.Pos.Mult(float64(m.TileSize))
		matches = append(matches, matched)
		if !keep {
			delete(m.grid, k)
		}
	}
	return matches
}
