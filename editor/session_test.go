package editor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/tilemap"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	m, err := assets.Open(t.TempDir()).Manifest()
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	return NewSession(tilemap.New(16), m, filepath.Join(t.TempDir(), "map.json"))
}

func TestBrushCycling(t *testing.T) {
	s := newSession(t)
	if got := s.Brush(); got.Type != "decor" || got.Variant != 0 {
		t.Fatalf("expected first sorted type decor, got %+v", got)
	}
	s.CycleVariant(-1)
	if got := s.Brush(); got.Variant != 3 {
		t.Fatalf("variant should wrap to 3, got %+v", got)
	}
	s.CycleGroup(1)
	if got := s.Brush(); got.Type != "grass" || got.Variant != 0 {
		t.Fatalf("changing group should reset variant, got %+v", got)
	}
	s.CycleGroup(-2)
	if got := s.Brush(); got.Type != "stone" {
		t.Fatalf("group should wrap backwards to stone, got %+v", got)
	}
}

func TestPlaceEraseUndo(t *testing.T) {
	s := newSession(t)
	s.CycleGroup(1) // grass

	if !s.Place(common.Vec{X: 40, Y: 20}) {
		t.Fatalf("placing on an empty cell should change the map")
	}
	if s.Place(common.Vec{X: 35, Y: 31}) {
		t.Fatalf("placing the same tile in the same cell is a no-op")
	}
	if tile, ok := s.Map.Get(tilemap.GridPos{X: 2, Y: 1}); !ok || tile.Type != "grass" {
		t.Fatalf("expected grass at 2;1, got %+v ok=%v", tile, ok)
	}

	s.OnGrid = false
	s.Place(common.Vec{X: 100.5, Y: 60})
	if got := s.Map.Offgrid(); len(got) != 1 || got[0].Pos != (common.Vec{X: 100.5, Y: 60}) {
		t.Fatalf("expected one free tile at the cursor, got %+v", got)
	}

	if !s.Erase(common.Vec{X: 105, Y: 70}) {
		t.Fatalf("erasing inside the free tile should remove it")
	}
	if len(s.Map.Offgrid()) != 0 {
		t.Fatalf("free tile should be gone")
	}
	if s.Erase(common.Vec{X: 500, Y: 500}) {
		t.Fatalf("erasing empty space is a no-op")
	}

	if s.UndoDepth() != 3 {
		t.Fatalf("expected 3 snapshots, got %d", s.UndoDepth())
	}
	s.Undo()
	if len(s.Map.Offgrid()) != 1 {
		t.Fatalf("undo should restore the free tile")
	}
	s.Undo()
	s.Undo()
	if s.Map.Len() != 0 || len(s.Map.Offgrid()) != 0 {
		t.Fatalf("undoing everything should leave an empty map")
	}
	if s.Undo() {
		t.Fatalf("undo with empty history should report false")
	}
}

func TestUndoHistoryIsBounded(t *testing.T) {
	s := newSession(t)
	s.maxUndo = 3
	for x := 0; x < 10; x++ {
		s.Place(common.Vec{X: float64(x * 16), Y: 0})
	}
	if s.UndoDepth() != 3 {
		t.Fatalf("expected history capped at 3, got %d", s.UndoDepth())
	}
}

func TestAutotileSaveAndEncode(t *testing.T) {
	s := newSession(t)
	s.CycleGroup(1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			s.Place(common.Vec{X: float64(x * 16), Y: float64(y * 16)})
		}
	}
	s.Autotile()
	if tile, _ := s.Map.Get(tilemap.GridPos{X: 1, Y: 1}); tile.Variant != 8 {
		t.Fatalf("center of a block should autotile to 8, got %d", tile.Variant)
	}

	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := tilemap.New(16)
	if err := loaded.Load(s.Path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 9 {
		t.Fatalf("expected 9 saved tiles, got %d", loaded.Len())
	}

	doc, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Contains(doc, []byte(`"1;1"`)) {
		t.Fatalf("document should contain grid keys:\n%s", doc)
	}
}
