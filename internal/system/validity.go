// internal/system/validity.go
package system

import (
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/entity"
	"sentinel-siege/pkg/geom"
)

// ValiditySystem отвечает на геометрические запросы к текущему снимку арены.
// Все методы — чистые функции, ничего не изменяют.
// Пруд препятствием не считается.
type ValiditySystem struct {
	ecs *entity.ECS
}

func NewValiditySystem(ecs *entity.ECS) *ValiditySystem {
	return &ValiditySystem{ecs: ecs}
}

// InBounds — точка строго внутри арены, уменьшенной на margin.
func (s *ValiditySystem) InBounds(p geom.Vec2, margin float64) bool {
	lo := -config.ArenaHalfSize + margin
	hi := config.ArenaHalfSize - margin
	return p.X > lo && p.X < hi && p.Y > lo && p.Y < hi
}

// ClearOfObstacles — круг радиуса radius вокруг p не пересекает ни одно дерево.
func (s *ValiditySystem) ClearOfObstacles(p geom.Vec2, radius float64) bool {
	for _, tree := range s.ecs.Scenery.Trees {
		if p.Dist(tree.Pos) < tree.Radius+radius {
			return false
		}
	}
	return true
}

func (s *ValiditySystem) PositionValidForPlayer(p geom.Vec2) bool {
	return s.PositionValidForEnemy(p, config.PlayerRadius)
}

// PositionValidForEnemy также используется при поиске точек спавна.
func (s *ValiditySystem) PositionValidForEnemy(p geom.Vec2, radius float64) bool {
	return s.InBounds(p, radius) && s.ClearOfObstacles(p, radius)
}

// GunTipValid запрещает упирать ствол в дерево, стену или тело врага.
func (s *ValiditySystem) GunTipValid(p geom.Vec2) bool {
	if !s.InBounds(p, config.GunTipMargin) || !s.ClearOfObstacles(p, 0) {
		return false
	}
	for _, e := range s.ecs.Enemies {
		if e.Removed {
			continue
		}
		if p.Dist(e.Pos) < e.Radius() {
			return false
		}
	}
	return true
}

// LineOfSight возвращает false, если отрезок a→b задевает зону дерева
// (радиус дерева + LineOfSightMargin). Вырожденный отрезок всегда видим.
func (s *ValiditySystem) LineOfSight(a, b geom.Vec2) bool {
	if a == b {
		return true
	}
	for _, tree := range s.ecs.Scenery.Trees {
		if geom.SegmentHitsCircle(a, b, tree.Pos, tree.Radius+config.LineOfSightMargin) {
			return false
		}
	}
	return true
}
