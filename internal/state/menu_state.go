// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/rparrett/taipo/internal/config"
)

// MenuState is the title screen.
type MenuState struct {
	sm  *StateMachine
	res Resources
}

func NewMenuState(sm *StateMachine, res Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.res))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "taipo", m.res.Faces.Input,
		config.ScreenWidth/2-48, config.ScreenHeight/2-20, config.NormalTextColor)
	text.Draw(screen, "press space to start", m.res.Faces.Label,
		config.ScreenWidth/2-120, config.ScreenHeight/2+24, config.SlotColor)
}

func (m *MenuState) Exit() {}
