// internal/defs/defaults.go
package defs

import "github.com/rparrett/taipo/internal/config"

// Built-in definitions used when no JSON overrides are present on disk.
// Tests and the headless simulation run entirely off these.

func defaultTowers() map[string]TowerDefinition {
	return map[string]TowerDefinition{
		"TOWER_SHURIKEN": {
			ID:           "TOWER_SHURIKEN",
			Name:         "Shuriken",
			Price:        config.TowerPrice,
			Damage:       1,
			Range:        config.TowerRange,
			FireInterval: config.FireInterval,
			MaxLevel:     config.TowerMaxLevel,
			UpgradePrice: config.UpgradePrice,
			UpgradeRange: config.UpgradeRange,
			UpgradeDmg:   config.UpgradeDamage,
			Visuals:      Visuals{Color: [4]uint8{220, 220, 240, 255}, Radius: 12},
		},
		"TOWER_SUPPORT": {
			ID:           "TOWER_SUPPORT",
			Name:         "Support",
			Price:        config.TowerPrice,
			Range:        config.TowerRange,
			MaxLevel:     config.TowerMaxLevel,
			UpgradePrice: config.UpgradePrice,
			UpgradeRange: config.UpgradeRange,
			Aura:         &AuraDefinition{Range: config.TowerRange, AddDamage: 1},
			Visuals:      Visuals{Color: [4]uint8{120, 220, 140, 255}, Radius: 12},
		},
		"TOWER_DEBUFF": {
			ID:           "TOWER_DEBUFF",
			Name:         "Debuff",
			Price:        config.TowerPrice,
			Damage:       1,
			Range:        config.TowerRange,
			FireInterval: config.FireInterval,
			MaxLevel:     config.TowerMaxLevel,
			UpgradePrice: config.UpgradePrice,
			UpgradeRange: config.UpgradeRange,
			UpgradeDmg:   config.UpgradeDamage,
			SubArmor:     2,
			Visuals:      Visuals{Color: [4]uint8{200, 120, 220, 255}, Radius: 12},
		},
	}
}

func defaultEnemies() map[string]EnemyDefinition {
	return map[string]EnemyDefinition{
		"ENEMY_SKELETON": {
			ID:         "ENEMY_SKELETON",
			Health:     3,
			Armor:      0,
			Speed:      20,
			GoalDamage: 1,
			Reward:     config.KillReward,
			Visuals:    Visuals{Color: [4]uint8{230, 230, 210, 255}, Radius: 10},
		},
		"ENEMY_ARMORED": {
			ID:         "ENEMY_ARMORED",
			Health:     4,
			Armor:      2,
			Speed:      16,
			GoalDamage: 1,
			Reward:     config.KillReward,
			Visuals:    Visuals{Color: [4]uint8{150, 150, 170, 255}, Radius: 11},
		},
	}
}

func defaultLevel() LevelDefinition {
	return LevelDefinition{
		GoalHP:           config.GoalHealth,
		GoalPosition:     Point{X: 660, Y: 240},
		StartingCurrency: config.StartingCurrency,
		Paths: [][]Point{
			{
				{X: 40, Y: 80},
				{X: 360, Y: 80},
				{X: 360, Y: 400},
				{X: 660, Y: 400},
				{X: 660, Y: 240},
			},
			{
				{X: 40, Y: 400},
				{X: 200, Y: 400},
				{X: 200, Y: 160},
				{X: 520, Y: 160},
				{X: 520, Y: 240},
				{X: 660, Y: 240},
			},
		},
		SlotPositions: []Point{
			{X: 280, Y: 160},
			{X: 440, Y: 80},
			{X: 440, Y: 320},
			{X: 280, Y: 320},
			{X: 580, Y: 320},
			{X: 120, Y: 240},
		},
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_SKELETON", Count: 4, Interval: 2, Delay: 4, PathIndex: 0},
			{EnemyID: "ENEMY_SKELETON", Count: 6, Interval: 1.5, Delay: 6, PathIndex: 1},
			{EnemyID: "ENEMY_ARMORED", Count: 4, Interval: 2, Delay: 6, PathIndex: 0},
			{EnemyID: "ENEMY_SKELETON", Count: 8, HP: 4, Interval: 1, Delay: 6, PathIndex: 1},
			{EnemyID: "ENEMY_ARMORED", Count: 6, HP: 5, Armor: 3, Interval: 1.5, Delay: 8, PathIndex: 0},
		},
	}
}
