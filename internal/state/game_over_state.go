// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/rparrett/taipo/internal/config"
)

// GameOverState is the end screen for both outcomes.
type GameOverState struct {
	sm          *StateMachine
	res         Resources
	victory     bool
	totalEarned int
}

func NewGameOverState(sm *StateMachine, res Resources, victory bool, totalEarned int) *GameOverState {
	return &GameOverState{sm: sm, res: res, victory: victory, totalEarned: totalEarned}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.res))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.res))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "defeat"
	c := config.DisabledTextColor
	if s.victory {
		title = "victory"
		c = config.MatchedTextColor
	}
	text.Draw(screen, title, s.res.Faces.Input,
		config.ScreenWidth/2-56, config.ScreenHeight/2-40, c)
	text.Draw(screen, fmt.Sprintf("total earned: $%d", s.totalEarned), s.res.Faces.Label,
		config.ScreenWidth/2-100, config.ScreenHeight/2+4, config.NormalTextColor)
	text.Draw(screen, "space to retry, esc for menu", s.res.Faces.Label,
		config.ScreenWidth/2-150, config.ScreenHeight/2+40, config.SlotColor)
}

func (s *GameOverState) Exit() {}
