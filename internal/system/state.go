// internal/system/state.go
package system

import (
	"time"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"

	log "github.com/sirupsen/logrus"
)

// SolDuration — длина марсианских суток в игровом времени.
const SolDuration = 60 * time.Second

// StateSystem переключает фазы сессии: пауза, продолжение, конец игры.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	dayStart        time.Time
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, now time.Time) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		dayStart:        now,
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}

// Pause останавливает симуляцию. Для законченной игры ничего не делает.
func (s *StateSystem) Pause() {
	if s.ecs.GameState.Phase == component.Running {
		s.ecs.GameState.Phase = component.Paused
	}
}

// Resume продолжает симуляцию после паузы.
func (s *StateSystem) Resume() {
	if s.ecs.GameState.Phase == component.Paused {
		s.ecs.GameState.Phase = component.Running
	}
}

// TogglePause переключает паузу.
func (s *StateSystem) TogglePause() {
	if s.ecs.GameState.Phase == component.Paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// UpdateDay увеличивает счётчик суток каждые SolDuration игрового времени.
func (s *StateSystem) UpdateDay(now time.Time) {
	for now.Sub(s.dayStart) >= SolDuration {
		s.ecs.GameState.Day++
		s.dayStart = s.dayStart.Add(SolDuration)
	}
}

// ResetDay начинает отсчёт текущих суток заново.
func (s *StateSystem) ResetDay(now time.Time) {
	s.dayStart = now
}

// CheckGameOver завершает игру, когда здоровье игрока кончилось.
func (s *StateSystem) CheckGameOver() bool {
	player := s.ecs.Player
	state := s.ecs.GameState
	if state.Phase == component.Over || player.Health > 0 {
		return state.Phase == component.Over
	}

	player.Health = 0
	state.Phase = component.Over
	log.WithFields(log.Fields{
		"wave":  state.Wave,
		"kills": state.Kills,
		"day":   state.Day,
	}).Info("game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: *state})
	return true
}
