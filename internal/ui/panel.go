// internal/ui/panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/game"
	"github.com/rparrett/taipo/internal/types"
	"github.com/rparrett/taipo/internal/typing"
)

// ActionPanel lists every live typeable action down the right edge of the
// screen: the phrase, a label for what it does, and the price if any.
// Matched chunks turn green as they are typed; unaffordable actions show
// in red.
type ActionPanel struct {
	faces *Faces
}

func NewActionPanel(faces *Faces) *ActionPanel {
	return &ActionPanel{faces: faces}
}

const panelWidth = 220

func (p *ActionPanel) Draw(screen *ebiten.Image, g *game.Game) {
	x := float32(config.ScreenWidth - panelWidth)
	vector.DrawFilledRect(screen, x, 0, panelWidth, config.ScreenHeight, config.PanelBackground, false)

	matcher := g.Matcher()
	lineHeight := float64(config.LineHeight)
	y := int(config.LineHeight)
	for _, a := range matcher.Actions() {
		p.drawAction(screen, g, matcher, a, int(x)+12, y)
		y += int(config.LineHeight)
		if g.HelpMode() {
			// Romaji hint under kana prompts.
			typed := a.Phrase.TypedString()
			if typed != a.Phrase.DisplayedString() {
				text.Draw(screen, typed, p.faces.Label, int(x)+24, y, config.SlotColor)
				y += int(lineHeight * 0.7)
			}
		}
	}
}

func (p *ActionPanel) drawAction(screen *ebiten.Image, g *game.Game, matcher *typing.Matcher, a typing.Action, x, y int) {
	baseColor := config.NormalTextColor
	if !a.Enabled {
		baseColor = config.DisabledTextColor
	}

	matched := matcher.MatchedChunks(a)
	if matcher.StateOf(a) == typing.StateInvalid {
		matched = 0
	}
	for i, chunk := range a.Phrase.Chunks {
		c := baseColor
		if a.Enabled && i < matched {
			c = config.MatchedTextColor
		}
		text.Draw(screen, chunk.Displayed, p.faces.Label, x, y, c)
		x += font.MeasureString(p.faces.Label, chunk.Displayed).Ceil()
	}

	label := actionLabel(g, a.Target)
	if label != "" {
		text.Draw(screen, "  "+label, p.faces.Label, x, y, labelColor(a))
	}
}

func labelColor(a typing.Action) color.RGBA {
	if !a.Enabled {
		return config.DisabledTextColor
	}
	return config.SlotColor
}

func actionLabel(g *game.Game, target types.TargetID) string {
	switch target.Kind {
	case types.TargetTowerSlot:
		if target.Action == types.ActionCancel {
			return "back"
		}
		return fmt.Sprintf("slot %d", g.ECS().Slots[target.Entity].Index+1)
	case types.TargetTower:
		switch target.Action {
		case types.ActionBuild:
			def := g.Library().Towers[target.BuildKind]
			return fmt.Sprintf("%s $%d", def.Name, def.Price)
		case types.ActionUpgrade:
			return fmt.Sprintf("upgrade $%d", g.ActionPrice(target))
		case types.ActionFire:
			return "fire"
		case types.ActionCancel:
			return "back"
		default:
			if tower, ok := g.ECS().Towers[target.Entity]; ok {
				def := g.Library().Towers[tower.DefID]
				return fmt.Sprintf("%s lv%d", def.Name, tower.Level)
			}
		}
	case types.TargetMenu:
		switch target.Menu {
		case types.MenuGenerateMoney:
			return "+$1"
		case types.MenuHelp:
			return "hints"
		case types.MenuMute:
			return "sound"
		}
	}
	return ""
}
