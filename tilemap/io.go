package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/ninja/common"
)

// ErrNotFound is returned by Load and LoadFS when the level document does not
// exist. It also matches fs.ErrNotExist.
var ErrNotFound = fmt.Errorf("tilemap: level not found: %w", fs.ErrNotExist)

// Document is the on-disk level format.
type Document struct {
	Tilemap  map[GridPos]Tile `json:"tilemap"`
	TileSize int              `json:"tile_size"`
	Offgrid  []Tile           `json:"offgrid"`
}

// Document snapshots the current state.
func (m *Tilemap) Document() Document {
	doc := Document{
		Tilemap:  make(map[GridPos]Tile, len(m.grid)),
		TileSize: m.TileSize,
		Offgrid:  append([]Tile{}, m.offgrid...),
	}
	for k, t := range m.grid {
		doc.Tilemap[k] = t
	}
	return doc
}

// Apply replaces the current state with doc. Every grid tile's position must
// match its key.
func (m *Tilemap) Apply(doc Document) error {
	grid := make(map[GridPos]Tile, len(doc.Tilemap))
	for k, t := range doc.Tilemap {
		if t.Pos != (common.Vec{X: float64(k.X), Y: float64(k.Y)}) {
			return fmt.Errorf("tilemap: tile at key %s has position (%v,%v)", k, t.Pos.X, t.Pos.Y)
		}
		grid[k] = t
	}
	size := doc.TileSize
	if size <= 0 {
		size = DefaultTileSize
	}
	m.TileSize = size
	m.grid = grid
	m.offgrid = append([]Tile(nil), doc.Offgrid...)
	return nil
}

// tileJSON is the wire form of a Tile; the position is a [x, y] array.
type tileJSON struct {
	Type    string    `json:"type"`
	Variant int       `json:"variant"`
	Pos     []float64 `json:"pos"`
}

func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal(tileJSON{Type: t.Type, Variant: t.Variant, Pos: []float64{t.Pos.X, t.Pos.Y}})
}

func (t *Tile) UnmarshalJSON(b []byte) error {
	var w tileJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if len(w.Pos) != 2 {
		return fmt.Errorf("tilemap: tile pos: expected 2 components, got %d", len(w.Pos))
	}
	*t = Tile{Type: w.Type, Variant: w.Variant, Pos: common.Vec{X: w.Pos[0], Y: w.Pos[1]}}
	return nil
}

// Encode writes the level document as indented JSON.
func (m *Tilemap) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.Document()); err != nil {
		return fmt.Errorf("tilemap: encode: %w", err)
	}
	return nil
}

// Decode reads a level document and replaces the current state.
func (m *Tilemap) Decode(r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("tilemap: decode: %w", err)
	}
	return m.Apply(doc)
}

// Save writes the level document to path, creating parent directories.
func (m *Tilemap) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("tilemap: save %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilemap: save %s: %w", path, err)
	}
	if err := m.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load replaces the current state with the document at path. A missing file
// clears the map and returns an error matching ErrNotFound.
func (m *Tilemap) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return m.openErr(path, err)
	}
	defer f.Close()
	return m.Decode(f)
}

// LoadFS is Load for an fs.FS such as the embedded levels.
func (m *Tilemap) LoadFS(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return m.openErr(name, err)
	}
	defer f.Close()
	return m.Decode(f)
}

func (m *Tilemap) openErr(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		m.Clear()
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("tilemap: load %s: %w", name, err)
}
