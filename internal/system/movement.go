// internal/system/movement.go
package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/utils"
	"sentinel-siege/pkg/geom"
)

// MoveDirection — направление хода турели вдоль ствола.
type MoveDirection int

const (
	Forward MoveDirection = iota
	Backward
)

// RotateDirection — направление поворота ствола. Left увеличивает угол.
type RotateDirection int

const (
	Left RotateDirection = iota
	Right
)

// MovementSystem перемещает игрока по командам и ведёт врагов к игроку.
type MovementSystem struct {
	ecs      *entity.ECS
	validity *ValiditySystem
}

func NewMovementSystem(ecs *entity.ECS, validity *ValiditySystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, validity: validity}
}

// TryMove сдвигает игрока на фиксированный шаг вдоль ствола. Компоненты X и Y
// проверяются раздельно, поэтому игрок скользит вдоль препятствия.
// Возвращает true, если сдвинулась хотя бы одна координата.
func (s *MovementSystem) TryMove(dir MoveDirection) bool {
	p := s.ecs.Player
	step := p.Direction().Scale(config.PlayerMoveStep)
	switch dir {
	case Forward:
	case Backward:
		step = step.Scale(-1)
	default:
		return false
	}

	moved := false
	if next := geom.V(p.Pos.X+step.X, p.Pos.Y); step.X != 0 && s.validity.PositionValidForPlayer(next) {
		p.Pos.X = next.X
		moved = true
	}
	if next := geom.V(p.Pos.X, p.Pos.Y+step.Y); step.Y != 0 && s.validity.PositionValidForPlayer(next) {
		p.Pos.Y = next.Y
		moved = true
	}
	return moved
}

// TryRotate поворачивает ствол, только если новый конец ствола допустим.
func (s *MovementSystem) TryRotate(dir RotateDirection) bool {
	p := s.ecs.Player
	var next float64
	switch dir {
	case Left:
		next = p.Heading + config.PlayerTurnStep
	case Right:
		next = p.Heading - config.PlayerTurnStep
	default:
		return false
	}

	tip := p.Pos.Add(geom.FromAngle(utils.DegToRad(next)).Scale(config.GunLength))
	if !s.validity.GunTipValid(tip) {
		return false
	}
	p.Heading = utils.NormalizeDegrees(next)
	return true
}

// SteerEnemy делает один шаг жадного обхода препятствий: прямо к игроку,
// влево, вправо, назад. Берётся первый допустимый вариант; если ни один
// не подошёл, враг стоит на месте.
func (s *MovementSystem) SteerEnemy(e *component.Enemy, toPlayer geom.Vec2) bool {
	def := e.Def()
	if def.Stationary() {
		return false
	}
	dir, ok := toPlayer.Normalize()
	if !ok {
		return false
	}

	candidates := [...]geom.Vec2{dir, dir.PerpLeft(), dir.PerpRight(), dir.Scale(-1)}
	for _, c := range candidates {
		next := e.Pos.Add(c.Scale(e.Speed))
		if s.validity.PositionValidForEnemy(next, def.Radius) {
			e.Pos = next
			return true
		}
	}
	return false
}
