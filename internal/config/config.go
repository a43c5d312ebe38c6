// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 720
	ScreenHeight = 480

	StartingCurrency = 10
	GoalHealth       = 10

	TowerPrice     = 20
	UpgradePrice   = 10
	TowerMaxLevel  = 2
	TowerRange     = 128.0
	UpgradeRange   = 32.0 // added per level
	UpgradeDamage  = 1
	FireInterval   = 1.0 // seconds between shots
	KillReward     = 2
	GenerateReward = 1

	ProjectileSpeed     = 100.0 // pixels per second
	ProjectileHitRadius = 8.0   // proximity test, not swept

	MaxDeltaTime = 0.25

	FontSize       = 32.0
	FontSizeLabel  = 24.0
	FontSizeInput  = 32.0
	LineHeight     = 42.0
	CursorBlinkSec = 0.5
)

var (
	BackgroundColor = color.RGBA{38, 38, 48, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	SlotColor       = color.RGBA{90, 90, 110, 255}
	GoalColor       = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{200, 60, 60, 255}
	CorpseColor     = color.RGBA{110, 60, 60, 160}
	ProjectileColor = color.RGBA{240, 240, 200, 255}

	NormalTextColor   = color.RGBA{240, 240, 240, 255}
	MatchedTextColor  = color.RGBA{80, 220, 80, 255}
	DisabledTextColor = color.RGBA{220, 70, 70, 255}
	CursorTextColor   = color.RGBA{255, 0, 0, 255}
	PanelBackground   = color.RGBA{0, 0, 0, 176}

	TowerColors = map[string]color.RGBA{
		"TOWER_SHURIKEN": {220, 220, 80, 255},
		"TOWER_SUPPORT":  {80, 180, 220, 255},
		"TOWER_DEBUFF":   {180, 80, 220, 255},
	}
)
