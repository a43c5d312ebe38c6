// internal/app/app.go
package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/state"
)

// tickSeconds is the fixed simulation step. Ebiten calls Update at 60 TPS;
// feeding the same constant every tick keeps runs reproducible.
const tickSeconds = 1.0 / 60

// App adapts the state machine to ebiten's game loop.
type App struct {
	sm *state.StateMachine
}

func New(res state.Resources) *App {
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, res))
	return &App{sm: sm}
}

func (a *App) Update() error {
	a.sm.Update(tickSeconds)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.sm.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
