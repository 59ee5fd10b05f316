package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	validity        *ValiditySystem
	areaAttack      *AreaAttackSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, validity *ValiditySystem, areaAttack *AreaAttackSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		validity:        validity,
		areaAttack:      areaAttack,
	}
}

// UpdateShots продвигает снаряды игрока. Пуля исчезает при выходе за арену,
// при пересечении дерева на пройденном отрезке или при первом попадании
// (первый враг в порядке хранения, без пробития).
func (s *ProjectileSystem) UpdateShots() {
	kept := s.ecs.Shots[:0]
	for _, p := range s.ecs.Shots {
		switch p.Kind {
		case component.ShotNormal, component.ShotBurst:
			if s.advanceBullet(p) {
				kept = append(kept, p)
			}
		case component.ShotShockwave:
			if s.areaAttack.Expand(p) {
				kept = append(kept, p)
			}
		}
	}
	clearTail(s.ecs.Shots, len(kept))
	s.ecs.Shots = kept
}

func (s *ProjectileSystem) advanceBullet(p *component.Projectile) bool {
	prev := p.Pos
	p.Pos = p.Pos.Add(p.Vel)

	if !s.validity.InBounds(p.Pos, 0) {
		return false
	}
	if !s.validity.LineOfSight(prev, p.Pos) {
		return false
	}
	if target := s.firstEnemyAt(p.Pos); target != nil {
		ApplyDamage(target, defs.Weapon(p.Kind.Weapon()).Damage)
		return false
	}
	return true
}

func (s *ProjectileSystem) firstEnemyAt(pos geom.Vec2) *component.Enemy {
	for _, e := range s.ecs.Enemies {
		if e.Removed {
			continue
		}
		if pos.Dist(e.Pos) < e.Radius() {
			return e
		}
	}
	return nil
}

// UpdateEnemyShots продвигает пули врагов. Видимость проверяется до шага,
// попадание и выход за арену — после.
func (s *ProjectileSystem) UpdateEnemyShots() {
	player := s.ecs.Player
	kept := s.ecs.EnemyShots[:0]
	for _, b := range s.ecs.EnemyShots {
		next := b.Pos.Add(b.Vel)
		if !s.validity.LineOfSight(b.Pos, next) {
			continue
		}
		b.Pos = next

		if b.Pos.Dist(player.Pos) < player.Radius {
			ApplyPlayerDamage(s.ecs, s.eventDispatcher, b.Damage)
			continue
		}
		if !s.validity.InBounds(b.Pos, 0) {
			continue
		}
		kept = append(kept, b)
	}
	clearTail(s.ecs.EnemyShots, len(kept))
	s.ecs.EnemyShots = kept
}

// clearTail обнуляет хвост среза после фильтрации на месте.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
