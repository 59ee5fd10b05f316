// internal/app/game.go
package app

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/system"
	"sentinel-siege/internal/utils"
)

// Game holds the simulation context: the entity store, the systems that
// mutate it and the clock that runs them in a fixed order.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ValiditySystem     *system.ValiditySystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	CombatSystem       *system.CombatSystem
	WeaponSystem       *system.WeaponSystem
	ProjectileSystem   *system.ProjectileSystem
	AreaAttackSystem   *system.AreaAttackSystem
	WaveSystem         *system.WaveSystem
	PickupSystem       *system.PickupSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame builds a match. A zero seed uses the current time.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.ValiditySystem = system.NewValiditySystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.ValiditySystem)
	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.MovementSystem, g.ValiditySystem, rng)
	g.WeaponSystem = system.NewWeaponSystem(ecs)
	g.AreaAttackSystem = system.NewAreaAttackSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.ValiditySystem, g.AreaAttackSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.ValiditySystem, rng)
	g.PickupSystem = system.NewPickupSystem(ecs, eventDispatcher, g.ValiditySystem, rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	eventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)

	g.StateSystem.Restart()
	return g
}

// Tick advances the simulation by one frame. It is a no-op unless Playing.
func (g *Game) Tick() {
	if g.ECS.GameState != component.Playing {
		return
	}
	if g.StateSystem.CheckPlayer() {
		return
	}

	g.VisualEffectSystem.Update()
	g.WeaponSystem.Update()
	g.PickupSystem.Update()
	g.CombatSystem.Update()
	g.CollisionSystem.Update()
	g.WaveSystem.Update()
	g.WeaponSystem.UpdateLaser()
	g.ProjectileSystem.UpdateShots()
	g.ProjectileSystem.UpdateEnemyShots()

	g.ECS.Tick++
}

// ResetMatch implements interfaces.GameContext.
func (g *Game) ResetMatch() {
	ecs := g.ECS
	ecs.Score = 0
	ecs.Difficulty = 0
	ecs.Tick = 0
	ecs.EnemyPulse = 0
	ecs.Pickup.Pulse = 0
	ecs.Player = entity.NewPlayer()
	*ecs.Weapon = component.WeaponState{Selected: defs.WeaponNormal}
	ecs.ClearDynamic()
	g.generateScenery()
	g.PickupSystem.Relocate()
	g.WaveSystem.InitialSpawn()
}

func (g *Game) ClearEnemies() {
	g.ECS.Enemies = nil
}

func (g *Game) ClearProjectiles() {
	g.ECS.Shots = nil
	g.ECS.EnemyShots = nil
	g.ECS.Laser = component.Laser{}
}

func (g *Game) playing() bool {
	return g.ECS.GameState == component.Playing
}

// MovePlayer moves the turret along its barrel.
func (g *Game) MovePlayer(dir system.MoveDirection) {
	if !g.playing() {
		return
	}
	g.MovementSystem.TryMove(dir)
}

// RotateGun turns the barrel by one step.
func (g *Game) RotateGun(dir system.RotateDirection) {
	if !g.playing() {
		return
	}
	g.MovementSystem.TryRotate(dir)
}

func (g *Game) SelectWeapon(w defs.WeaponType) {
	g.WeaponSystem.Select(w)
}

// Fire is edge-triggered and ignored for the laser.
func (g *Game) Fire() {
	if !g.playing() {
		return
	}
	g.WeaponSystem.Fire()
}

// SetContinuousFire holds or releases the trigger for the laser.
func (g *Game) SetContinuousFire(held bool) {
	g.WeaponSystem.SetTriggerHeld(held)
}

func (g *Game) TogglePause() {
	g.StateSystem.TogglePause()
}

func (g *Game) Restart() {
	g.StateSystem.Restart()
}
