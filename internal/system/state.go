package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/interfaces"
)

// StateSystem владеет переходами Playing / Paused / Over.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerDied {
		s.SwitchToOver()
	}
}

// CheckPlayer — проверка верхнего уровня: игрок без здоровья означает конец партии.
func (s *StateSystem) CheckPlayer() bool {
	if s.ecs.Player.HP <= 0 {
		s.SwitchToOver()
		return true
	}
	return false
}

func (s *StateSystem) SwitchToOver() {
	s.ecs.Player.HP = 0
	s.ecs.GameState = component.Over
	s.ecs.Laser.Active = false
}

// TogglePause переключает Playing и Paused. В состоянии Over ничего не делает.
func (s *StateSystem) TogglePause() {
	switch s.ecs.GameState {
	case component.Playing:
		s.ecs.GameState = component.Paused
	case component.Paused:
		s.ecs.GameState = component.Playing
	}
}

// Restart из любого состояния начинает партию заново.
func (s *StateSystem) Restart() {
	s.gameContext.ResetMatch()
	s.ecs.GameState = component.Playing
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
