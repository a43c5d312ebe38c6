// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Library aggregates every loaded definition table.
type Library struct {
	Towers  map[string]TowerDefinition
	Enemies map[string]EnemyDefinition
	Level   LevelDefinition
}

// Defaults returns a library backed entirely by the built-in tables.
func Defaults() *Library {
	lib := &Library{
		Towers:  defaultTowers(),
		Enemies: defaultEnemies(),
		Level:   defaultLevel(),
	}
	return lib
}

// LoadAll builds a library from the built-ins and then applies any JSON
// override files found under dir (towers.json, enemies.json, level.json,
// waves.json). A missing file is not an error; a malformed one is.
func LoadAll(dir string) (*Library, error) {
	lib := Defaults()

	var towers []TowerDefinition
	if err := loadJSON(filepath.Join(dir, "towers.json"), &towers); err != nil {
		return nil, err
	}
	for _, t := range towers {
		lib.Towers[t.ID] = t
	}

	var enemies []EnemyDefinition
	if err := loadJSON(filepath.Join(dir, "enemies.json"), &enemies); err != nil {
		return nil, err
	}
	for _, e := range enemies {
		lib.Enemies[e.ID] = e
	}

	var level LevelDefinition
	levelPath := filepath.Join(dir, "level.json")
	if _, err := os.Stat(levelPath); err == nil {
		if err := loadJSON(levelPath, &level); err != nil {
			return nil, err
		}
		level.Waves = lib.Level.Waves
		lib.Level = level
	}

	var waves []WaveDefinition
	wavesPath := filepath.Join(dir, "waves.json")
	if _, err := os.Stat(wavesPath); err == nil {
		if err := loadJSON(wavesPath, &waves); err != nil {
			return nil, err
		}
		lib.Level.Waves = waves
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (lib *Library) validate() error {
	for i, w := range lib.Level.Waves {
		if _, ok := lib.Enemies[w.EnemyID]; !ok {
			return fmt.Errorf("wave %d references unknown enemy %q", i, w.EnemyID)
		}
		if w.PathIndex < 0 || w.PathIndex >= len(lib.Level.Paths) {
			return fmt.Errorf("wave %d references path %d of %d", i, w.PathIndex, len(lib.Level.Paths))
		}
		if w.Count <= 0 {
			return fmt.Errorf("wave %d has no enemies", i)
		}
	}
	for id, p := range lib.Level.Paths {
		if len(p) < 2 {
			return fmt.Errorf("path %d has fewer than two waypoints", id)
		}
	}
	return nil
}
