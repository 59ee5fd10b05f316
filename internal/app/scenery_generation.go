// internal/app/scenery_generation.go
package app

import (
	"log"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/pkg/geom"
)

// generateScenery заново расставляет деревья. Дерево не ставится ближе
// TreeCenterClear к центру, у самого края арены и в пруду.
func (g *Game) generateScenery() {
	scenery := g.ECS.Scenery
	scenery.Pond = component.Pond{Pos: geom.V(config.PondX, config.PondY), Radius: config.PondRadius}
	scenery.Trees = make([]component.Tree, 0, config.TreeCount)

	limit := config.ArenaHalfSize - config.TreeEdgeBuffer
	center := geom.V(0, 0)

	isValidTreeSpot := func(p geom.Vec2) bool {
		if p.Dist(center) <= config.TreeCenterClear {
			return false
		}
		return p.Dist(scenery.Pond.Pos) > scenery.Pond.Radius+config.TreeRadius
	}

	skipped := 0
	for i := 0; i < config.TreeCount; i++ {
		placed := false
		for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
			p := geom.V(g.Rng.Uniform(-limit, limit), g.Rng.Uniform(-limit, limit))
			if !isValidTreeSpot(p) {
				continue
			}
			scenery.Trees = append(scenery.Trees, component.Tree{
				Pos:    p,
				Radius: config.TreeRadius,
				Scale:  g.Rng.Uniform(config.TreeMinScale, config.TreeMaxScale),
			})
			placed = true
			break
		}
		if !placed {
			skipped++
		}
	}
	if skipped > 0 {
		log.Printf("generateScenery: skipped %d trees, no valid position", skipped)
	}
}
