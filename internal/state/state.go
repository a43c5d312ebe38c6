// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/ui"
)

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resources is what every state needs to construct the next one: the
// definition library, the UI faces and a factory for a fresh phrase pool
// (pools are consumed by play, restarts need a new one).
type Resources struct {
	Lib     *defs.Library
	Faces   *ui.Faces
	NewPool func() *lexicon.Pool
}

// StateMachine holds the active state and routes updates and draws to it.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
