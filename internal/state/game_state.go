// internal/state/game_state.go
package state

import (
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rparrett/taipo/internal/audio"
	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/event"
	"github.com/rparrett/taipo/internal/game"
	"github.com/rparrett/taipo/internal/system"
	"github.com/rparrett/taipo/internal/ui"
)

// GameState runs a level: keyboard input goes to the matcher, the fixed
// timestep advances the world, and the playfield plus typing UI is drawn
// every frame.
type GameState struct {
	sm  *StateMachine
	res Resources

	g        *game.Game
	renderer *system.RenderSystem
	panel    *ui.ActionPanel
	hud      *ui.HUD
	bar      *ui.TypingBar
	player   *audio.Player

	chars []rune
}

func NewGameState(sm *StateMachine, res Resources) *GameState {
	dispatcher := event.NewDispatcher()
	player := audio.NewPlayer(dispatcher)
	g := game.New(res.Lib, res.NewPool(), dispatcher)

	return &GameState{
		sm:       sm,
		res:      res,
		g:        g,
		renderer: system.NewRenderSystem(g.ECS(), res.Lib),
		panel:    ui.NewActionPanel(res.Faces),
		hud:      ui.NewHUD(res.Faces),
		bar:      ui.NewTypingBar(res.Faces),
		player:   player,
	}
}

func (s *GameState) Enter() {
	if err := s.player.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
}

func (s *GameState) Update(deltaTime float64) {
	s.handleInput()
	s.g.Tick(deltaTime)
	s.bar.Update(deltaTime)

	if phase := s.g.Phase(); phase != game.PhasePlaying {
		s.sm.SetState(NewGameOverState(s.sm, s.res, phase == game.PhaseVictory, s.g.TotalEarned()))
	}
}

func (s *GameState) handleInput() {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		s.g.TypeRune(unicode.ToLower(r))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.g.Submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.g.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.g.ClearBuffer()
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen)
	s.hud.Draw(screen, s.g)
	s.panel.Draw(screen, s.g)
	s.bar.Draw(screen, s.g)
}

func (s *GameState) Exit() {}
