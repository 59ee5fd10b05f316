package system

import (
	"log"

	"sentinel-siege/internal/config"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/utils"
	"sentinel-siege/pkg/geom"
)

// PickupSystem лечит игрока, коснувшегося аптечки, и переносит аптечку.
type PickupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	validity        *ValiditySystem
	rng             *utils.PRNGService
}

func NewPickupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, validity *ValiditySystem, rng *utils.PRNGService) *PickupSystem {
	return &PickupSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		validity:        validity,
		rng:             rng,
	}
}

func (s *PickupSystem) Update() {
	player := s.ecs.Player
	pickup := s.ecs.Pickup
	if !geom.CirclesOverlap(player.Pos, player.Radius, pickup.Pos, pickup.Radius) {
		return
	}
	player.Heal()
	s.Relocate()
	s.eventDispatcher.Dispatch(event.Event{Type: event.PickupCollected, Data: pickup.Pos})
}

// Relocate переносит аптечку в случайную точку кольца, свободную от деревьев.
// Если место не найдено, аптечка остаётся на прежнем месте.
func (s *PickupSystem) Relocate() bool {
	pickup := s.ecs.Pickup
	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		dist := s.rng.Uniform(config.PickupMinDist, config.PickupMaxDist)
		p := geom.FromAngle(s.rng.Angle()).Scale(dist)
		if s.validity.ClearOfObstacles(p, pickup.Radius) {
			pickup.Pos = p
			return true
		}
	}
	log.Printf("PickupSystem: no free spot for the health pickup, keeping %.0f,%.0f", pickup.Pos.X, pickup.Pos.Y)
	return false
}
