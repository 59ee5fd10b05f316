// internal/app/snapshot.go
package app

import (
	"sentinel-siege/internal/component"
)

// Снимки возвращаются по значению: рендер и HUD не могут менять состояние партии.

func (g *Game) Player() component.Player {
	return *g.ECS.Player
}

func (g *Game) Enemies() []component.Enemy {
	out := make([]component.Enemy, 0, len(g.ECS.Enemies))
	for _, e := range g.ECS.Enemies {
		out = append(out, *e)
	}
	return out
}

func (g *Game) Shots() []component.Projectile {
	out := make([]component.Projectile, 0, len(g.ECS.Shots))
	for _, p := range g.ECS.Shots {
		out = append(out, *p)
	}
	return out
}

func (g *Game) EnemyShots() []component.EnemyProjectile {
	out := make([]component.EnemyProjectile, 0, len(g.ECS.EnemyShots))
	for _, b := range g.ECS.EnemyShots {
		out = append(out, *b)
	}
	return out
}

func (g *Game) Pickup() component.HealthPickup {
	return *g.ECS.Pickup
}

// Scenery копирует список деревьев.
func (g *Game) Scenery() component.Scenery {
	s := *g.ECS.Scenery
	s.Trees = append([]component.Tree(nil), s.Trees...)
	return s
}

func (g *Game) Score() int      { return g.ECS.Score }
func (g *Game) Difficulty() int { return g.ECS.Difficulty }

func (g *Game) Weapon() component.WeaponState {
	return *g.ECS.Weapon
}

func (g *Game) Laser() component.Laser {
	return g.ECS.Laser
}

func (g *Game) State() component.GameState {
	return g.ECS.GameState
}

func (g *Game) EnemyPulse() float64 {
	return g.ECS.EnemyPulse
}
