// internal/component/projectile.go
package component

import (
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

// ShotKind — закрытое перечисление видов снарядов игрока.
type ShotKind int

const (
	ShotNormal ShotKind = iota
	ShotBurst
	ShotShockwave
)

func (k ShotKind) String() string {
	switch k {
	case ShotNormal:
		return "normal"
	case ShotBurst:
		return "burst"
	case ShotShockwave:
		return "shockwave"
	default:
		return "unknown"
	}
}

// Weapon возвращает оружие, чей урон применяет снаряд.
func (k ShotKind) Weapon() defs.WeaponType {
	switch k {
	case ShotBurst:
		return defs.WeaponBurst
	case ShotShockwave:
		return defs.WeaponShockwave
	default:
		return defs.WeaponNormal
	}
}

// Projectile — снаряд игрока. Vel используется обычными пулями,
// Radius — только кольцом ударной волны.
type Projectile struct {
	Kind   ShotKind
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
}

// NewBullet создаёт мгновенный снаряд (normal или burst).
func NewBullet(kind ShotKind, pos, vel geom.Vec2) *Projectile {
	return &Projectile{Kind: kind, Pos: pos, Vel: vel}
}

// NewShockwave создаёт расширяющееся кольцо с нулевым радиусом.
func NewShockwave(center geom.Vec2) *Projectile {
	return &Projectile{Kind: ShotShockwave, Pos: center}
}

// EnemyProjectile — пуля врага. Owner нужен только для цвета.
type EnemyProjectile struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Damage float64
	Owner  defs.ArchetypeID
}
