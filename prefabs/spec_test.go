package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedSpecsMatchDefaults(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	specs, err := LoadAll()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if specs != Defaults() {
		t.Fatalf("embedded yaml drifted from code defaults:\n got %+v\nwant %+v", specs, Defaults())
	}
}

func TestDiskOverrideAndMissingKeys(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	if err := os.WriteFile(filepath.Join(Dir, "player.yaml"), []byte("jump_speed: 4.5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.JumpSpeed != 4.5 {
		t.Fatalf("expected override 4.5, got %v", spec.JumpSpeed)
	}
	if spec.DashFrames != DefaultPlayer.DashFrames || spec.Width != 8 {
		t.Fatalf("missing keys should keep defaults, got %+v", spec)
	}
}

func TestReload(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	s := Defaults()
	path := filepath.Join(Dir, "enemy.yaml")

	if err := os.WriteFile(path, []byte("walk_speed: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	known, err := s.Reload(path)
	if !known || err != nil || s.Enemy.WalkSpeed != 1 {
		t.Fatalf("reload: known=%v err=%v speed=%v", known, err, s.Enemy.WalkSpeed)
	}

	if err := os.WriteFile(path, []byte("walk_speed: [oops\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Reload(path); err == nil {
		t.Fatalf("expected a yaml error")
	}
	if s.Enemy.WalkSpeed != 1 {
		t.Fatalf("failed reload must keep the previous spec, got %v", s.Enemy.WalkSpeed)
	}

	if known, _ := s.Reload(filepath.Join(Dir, "scripts", "patrol.tengo")); known {
		t.Fatalf("scripts are not spec files")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"patrol.tengo", "scripts/patrol.tengo", "prefabs/scripts/patrol.tengo"} {
		data, err := LoadScript(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("%s: expected embedded script, err=%v", name, err)
		}
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected error for a missing script")
	}
}
