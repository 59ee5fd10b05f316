package ui

import "sentinel-siege/internal/component"

// Snapshot — всё, что интерфейс читает из симуляции.
type Snapshot interface {
	Player() component.Player
	Enemies() []component.Enemy
	Shots() []component.Projectile
	EnemyShots() []component.EnemyProjectile
	Pickup() component.HealthPickup
	Scenery() component.Scenery
	Score() int
	Difficulty() int
	Weapon() component.WeaponState
	Laser() component.Laser
	State() component.GameState
	EnemyPulse() float64
}
