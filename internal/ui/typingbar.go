// internal/ui/typingbar.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/game"
)

// TypingBar renders the input buffer along the bottom with a blinking
// cursor. The buffer turns red once it stops being a prefix of any live
// action.
type TypingBar struct {
	faces *Faces
	timer float64
}

func NewTypingBar(faces *Faces) *TypingBar {
	return &TypingBar{faces: faces}
}

func (b *TypingBar) Update(deltaTime float64) {
	b.timer += deltaTime
}

func (b *TypingBar) Draw(screen *ebiten.Image, g *game.Game) {
	barY := float32(config.ScreenHeight - config.LineHeight - 8)
	vector.DrawFilledRect(screen, 0, barY, config.ScreenWidth-panelWidth, float32(config.LineHeight)+8, config.PanelBackground, false)

	matcher := g.Matcher()
	c := config.NormalTextColor
	if !matcher.AnyPrefix() {
		c = config.DisabledTextColor
	}

	prompt := "> " + matcher.Buffer()
	y := config.ScreenHeight - 14
	text.Draw(screen, prompt, b.faces.Input, 12, y, c)

	blink := math.Mod(b.timer, 2*config.CursorBlinkSec) < config.CursorBlinkSec
	if blink {
		x := 12 + font.MeasureString(b.faces.Input, prompt).Ceil()
		text.Draw(screen, "_", b.faces.Input, x, y, config.CursorTextColor)
	}
}
