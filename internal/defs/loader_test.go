package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreComplete(t *testing.T) {
	lib := Defaults()
	if err := lib.validate(); err != nil {
		t.Fatalf("built-in definitions invalid: %v", err)
	}
	for _, id := range []string{"TOWER_SHURIKEN", "TOWER_SUPPORT", "TOWER_DEBUFF"} {
		if _, ok := lib.Towers[id]; !ok {
			t.Errorf("missing tower %s", id)
		}
	}
	if !lib.Towers["TOWER_SHURIKEN"].CanShoot() {
		t.Error("shuriken tower must shoot")
	}
	if lib.Towers["TOWER_SUPPORT"].CanShoot() {
		t.Error("support tower must not shoot")
	}
}

func TestLoadAllMissingDirUsesDefaults(t *testing.T) {
	lib, err := LoadAll(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(lib.Towers) != len(defaultTowers()) {
		t.Errorf("towers = %d, want defaults", len(lib.Towers))
	}
}

func TestLoadAllOverrides(t *testing.T) {
	dir := t.TempDir()
	towers := `[{"id": "TOWER_SHURIKEN", "name": "Custom", "price": 5, "damage": 9,
		"range": 64, "fire_interval": 0.5, "max_level": 3, "upgrade_price": 2,
		"visuals": {"color": [1, 2, 3, 255], "radius": 8}}]`
	if err := os.WriteFile(filepath.Join(dir, "towers.json"), []byte(towers), 0o644); err != nil {
		t.Fatal(err)
	}
	waves := `[{"enemy": "ENEMY_SKELETON", "num": 1, "interval": 1, "delay": 0, "path_index": 0}]`
	if err := os.WriteFile(filepath.Join(dir, "waves.json"), []byte(waves), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got := lib.Towers["TOWER_SHURIKEN"].Price; got != 5 {
		t.Errorf("price = %d, want override 5", got)
	}
	if _, ok := lib.Towers["TOWER_SUPPORT"]; !ok {
		t.Error("untouched defaults must survive an override file")
	}
	if len(lib.Level.Waves) != 1 {
		t.Errorf("waves = %d, want 1", len(lib.Level.Waves))
	}
}

func TestLoadAllRejectsBadReferences(t *testing.T) {
	dir := t.TempDir()
	waves := `[{"enemy": "ENEMY_NOPE", "num": 1, "interval": 1, "delay": 0, "path_index": 0}]`
	if err := os.WriteFile(filepath.Join(dir, "waves.json"), []byte(waves), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAll(dir); err == nil {
		t.Fatal("expected error for unknown enemy reference")
	}
}

func TestLoadAllRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "towers.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAll(dir); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
