// internal/state/pause_state.go
package state

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState держит партию на паузе и рисует последний кадр под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.pauseButtonAt(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		unpause = unpause || s.pauseButtonAt(x, y)
	}
	if !unpause {
		return
	}

	game := s.previousState.game
	game.StateSystem.Resume()
	if game.StateSystem.Current() == component.Running {
		s.previousState.snap = game.Snapshot()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) pauseButtonAt(x, y int) bool {
	b, ok := s.previousState.controls.Layout.ButtonAt(x, y)
	return ok && b.Action == input.TogglePause
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
}

func (s *PauseState) Exit() {}
