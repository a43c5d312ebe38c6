// internal/defs/types.go
package defs

// Visuals is the placeholder draw style for an entity kind.
type Visuals struct {
	Color  [4]uint8 `json:"color"`
	Radius float32  `json:"radius"`
}

// AuraDefinition makes a tower buff other towers in range instead of
// shooting.
type AuraDefinition struct {
	Range     float64 `json:"range"`
	AddDamage int     `json:"add_damage"`
}

// TowerDefinition describes one buildable tower kind.
type TowerDefinition struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        int             `json:"price"`
	Damage       int             `json:"damage"`
	Range        float64         `json:"range"`
	FireInterval float64         `json:"fire_interval"`
	MaxLevel     int             `json:"max_level"`
	UpgradePrice int             `json:"upgrade_price"`
	UpgradeRange float64         `json:"upgrade_range"`
	UpgradeDmg   int             `json:"upgrade_damage"`
	SubArmor     int             `json:"sub_armor"` // applied to enemies hit by this tower's projectiles
	Aura         *AuraDefinition `json:"aura,omitempty"`
	Visuals      Visuals         `json:"visuals"`
}

// CanShoot reports whether the kind fires projectiles at all.
func (d TowerDefinition) CanShoot() bool {
	return d.Aura == nil
}

// EnemyDefinition describes one enemy kind.
type EnemyDefinition struct {
	ID         string  `json:"id"`
	Health     int     `json:"health"`
	Armor      int     `json:"armor"`
	Speed      float64 `json:"speed"`
	GoalDamage int     `json:"goal_damage"`
	Reward     int     `json:"reward"`
	Visuals    Visuals `json:"visuals"`
}

// WaveDefinition is one wave's spawn schedule: after Delay seconds, Count
// enemies of EnemyID spawn Interval seconds apart along the path at
// PathIndex. HP/Armor/Speed override the enemy definition when positive.
type WaveDefinition struct {
	EnemyID   string  `json:"enemy"`
	Count     int     `json:"num"`
	HP        int     `json:"hp"`
	Armor     int     `json:"armor"`
	Speed     float64 `json:"speed"`
	Interval  float64 `json:"interval"`
	Delay     float64 `json:"delay"`
	PathIndex int     `json:"path_index"`
}

// Point is a level-geometry coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelDefinition is the immutable per-level configuration consumed at
// level start.
type LevelDefinition struct {
	GoalHP           int       `json:"goal_hp"`
	GoalPosition     Point     `json:"goal_position"`
	StartingCurrency int       `json:"starting_currency"`
	Paths            [][]Point `json:"paths"`
	SlotPositions    []Point   `json:"slot_positions"`
	Waves            []WaveDefinition
}
