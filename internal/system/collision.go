// internal/system/collision.go
package system

import (
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/entity"
	"sentinel-siege/pkg/geom"
)

// CollisionSystem раздвигает пересекающиеся круги: игрок–враг и враг–враг.
// Позиции после толчка не проверяются на деревья.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

func (s *CollisionSystem) Update() {
	player := s.ecs.Player
	for _, e := range s.ecs.Enemies {
		if e.Removed {
			continue
		}
		separate(&player.Pos, player.Radius, &e.Pos, e.Radius())
	}

	enemies := s.ecs.Enemies
	for i := 0; i < len(enemies); i++ {
		a := enemies[i]
		if a.Removed {
			continue
		}
		for j := i + 1; j < len(enemies); j++ {
			b := enemies[j]
			if b.Removed {
				continue
			}
			separate(&a.Pos, a.Radius(), &b.Pos, b.Radius())
		}
	}
}

// separate сдвигает оба круга вдоль нормали на долю перекрытия.
// Совпадающие центры пропускаются: нормаль не определена.
func separate(a *geom.Vec2, ra float64, b *geom.Vec2, rb float64) {
	delta := a.Sub(*b)
	dist := delta.Len()
	minDist := ra + rb
	if dist <= 0 || dist >= minDist {
		return
	}
	normal := delta.Scale(1 / dist)
	push := (minDist - dist) * config.CollisionPushFactor
	*a = a.Add(normal.Scale(push))
	*b = b.Sub(normal.Scale(push))
}
