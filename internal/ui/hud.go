// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/game"
)

// HUD shows currency, goal health and wave progress across the top.
type HUD struct {
	faces *Faces
}

func NewHUD(faces *Faces) *HUD {
	return &HUD{faces: faces}
}

func (h *HUD) Draw(screen *ebiten.Image, g *game.Game) {
	line := fmt.Sprintf("$%d   goal %d/%d   wave %d/%d",
		g.Currency(),
		g.GoalHP(), g.Library().Level.GoalHP,
		g.CurrentWave(), g.TotalWaves())
	lineHeight := float64(config.LineHeight)
	text.Draw(screen, line, h.faces.Label, 12, int(lineHeight*0.8), config.NormalTextColor)

	if g.Muted() {
		text.Draw(screen, "muted", h.faces.Label, 12, int(lineHeight*1.6), config.SlotColor)
	}
}
