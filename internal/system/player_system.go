// internal/system/player_system.go
package system

import (
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
)

// PlayerSystem начисляет очки за уничтоженных врагов.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	s.ecs.Score += data.Reward
}
