package system

import (
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/entity"
)

// VisualEffectSystem двигает косметические фазы пульсации.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update() {
	s.ecs.Pickup.Pulse += config.PickupPulseStep
	s.ecs.EnemyPulse += config.EnemyPulseStep
}
