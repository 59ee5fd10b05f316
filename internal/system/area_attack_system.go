// internal/system/area_attack_system.go
package system

import (
	"math"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
)

// AreaAttackSystem управляет ударной волной — расширяющимся кольцом урона.
type AreaAttackSystem struct {
	ecs *entity.ECS
}

func NewAreaAttackSystem(ecs *entity.ECS) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs}
}

// Expand увеличивает радиус кольца и наносит урон врагам в узкой полосе
// вокруг него. Урон наносится только при радиусе, кратном шагу.
// Возвращает false, когда кольцо достигло предельного размера и должно исчезнуть.
func (s *AreaAttackSystem) Expand(p *component.Projectile) bool {
	p.Radius += config.ShockwaveGrowth
	if p.Radius >= config.ShockwaveMaxSize {
		return false
	}
	if int(p.Radius)%config.ShockwaveStep != 0 {
		return true
	}

	damage := defs.Weapon(defs.WeaponShockwave).Damage
	for _, e := range s.ecs.Enemies {
		if e.Removed {
			continue
		}
		if math.Abs(e.Pos.Dist(p.Pos)-p.Radius) < config.ShockwaveBand {
			ApplyDamage(e, damage)
		}
	}
	return true
}
