package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ninja/tilemap"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	if Count() < 1 {
		t.Fatalf("expected embedded levels")
	}
	for id := 0; id < Count(); id++ {
		m := tilemap.New(16)
		if err := Load(m, "", id); err != nil {
			t.Fatalf("level %d: %v", id, err)
		}
		spawners := m.Extract([]tilemap.TypeVariant{{Type: "spawners", Variant: 0}}, true)
		if len(spawners) != 1 {
			t.Fatalf("level %d: expected one player spawner, got %d", id, len(spawners))
		}
		// Spawn points stand on solid ground.
		p := spawners[0].Pos
		if _, ok := m.SolidCheck(p); ok {
			t.Fatalf("level %d: player spawns inside a wall at %v", id, p)
		}
		p.Y += 16
		if _, ok := m.SolidCheck(p); !ok {
			t.Fatalf("level %d: no ground under the player spawn %v", id, spawners[0].Pos)
		}
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	doc := `{"tilemap": {"0;0": {"type": "stone", "variant": 4, "pos": [0, 0]}}, "tile_size": 16, "offgrid": []}`
	if err := os.WriteFile(filepath.Join(dir, "0.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := tilemap.New(16)
	if err := Load(m, dir, 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected the disk level, got %d tiles", m.Len())
	}

	if err := Load(m, dir, 1); err != nil {
		t.Fatalf("missing disk copy should fall back to embedded: %v", err)
	}

	if err := Load(m, dir, 99); !errors.Is(err, tilemap.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("missing level should leave the map empty")
	}
}
