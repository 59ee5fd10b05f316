// internal/entity/ecs.go
package entity

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/pkg/geom"
)

// ECS — хранилище всех сущностей одной партии. Коллекции — срезы,
// порядок вставки определяет порядок обхода ("store order").
type ECS struct {
	Tick       uint64
	Player     *component.Player
	Enemies    []*component.Enemy
	Shots      []*component.Projectile
	EnemyShots []*component.EnemyProjectile
	Pickup     *component.HealthPickup
	Scenery    *component.Scenery
	Weapon     *component.WeaponState
	Laser      component.Laser
	GameState  component.GameState
	Score      int
	Difficulty int
	EnemyPulse float64
}

func NewECS() *ECS {
	return &ECS{
		Player:  NewPlayer(),
		Pickup:  &component.HealthPickup{Radius: config.PickupRadius},
		Scenery: &component.Scenery{Pond: component.Pond{Pos: geom.V(config.PondX, config.PondY), Radius: config.PondRadius}},
		Weapon:  &component.WeaponState{},
	}
}

// NewPlayer создаёт игрока в стартовой позиции с полным здоровьем.
func NewPlayer() *component.Player {
	return &component.Player{
		Pos:    geom.V(config.PlayerStartX, config.PlayerStartY),
		HP:     config.PlayerMaxHP,
		MaxHP:  config.PlayerMaxHP,
		Radius: config.PlayerRadius,
	}
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

func (ecs *ECS) AddShot(p *component.Projectile) {
	ecs.Shots = append(ecs.Shots, p)
}

func (ecs *ECS) AddEnemyShot(p *component.EnemyProjectile) {
	ecs.EnemyShots = append(ecs.EnemyShots, p)
}

// LiveEnemyCount не учитывает врагов, уже помеченных на удаление.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if !e.Removed {
			n++
		}
	}
	return n
}

// CompactEnemies удаляет помеченных врагов, сохраняя порядок остальных.
func (ecs *ECS) CompactEnemies() {
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if !e.Removed {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
}

// ClearDynamic очищает врагов и оба списка снарядов.
func (ecs *ECS) ClearDynamic() {
	ecs.Enemies = nil
	ecs.Shots = nil
	ecs.EnemyShots = nil
	ecs.Laser = component.Laser{}
}
