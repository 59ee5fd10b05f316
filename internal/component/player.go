// internal/component/player.go
package component

import (
	"math"

	"sentinel-siege/pkg/geom"
)

// Player — турель игрока. Heading хранится в градусах.
type Player struct {
	Pos     geom.Vec2
	Heading float64
	HP      float64
	MaxHP   float64
	Radius  float64
}

// Direction возвращает единичный вектор направления ствола.
func (p *Player) Direction() geom.Vec2 {
	return geom.FromAngle(p.Heading * math.Pi / 180)
}

// GunTip возвращает точку на конце ствола длины length.
func (p *Player) GunTip(length float64) geom.Vec2 {
	return p.Pos.Add(p.Direction().Scale(length))
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
// Возвращает true, если игрок только что погиб.
func (p *Player) TakeDamage(amount float64) bool {
	if p.HP <= 0 {
		return false
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		return true
	}
	return false
}

// Heal восстанавливает здоровье до максимума.
func (p *Player) Heal() {
	p.HP = p.MaxHP
}

// Alive сообщает, жив ли игрок.
func (p *Player) Alive() bool {
	return p.HP > 0
}
