package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/utils"
	"sentinel-siege/pkg/geom"
)

// recorder запоминает все полученные события.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// world — пустая арена без деревьев с детерминированным генератором.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	validity   *ValiditySystem
	movement   *MovementSystem
	events     *recorder
}

func newWorld() *world {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	validity := NewValiditySystem(ecs)
	w := &world{
		ecs:        ecs,
		dispatcher: d,
		rng:        utils.NewPRNGService(7),
		validity:   validity,
		movement:   NewMovementSystem(ecs, validity),
		events:     &recorder{},
	}
	for _, t := range []event.EventType{
		event.EnemyKilled, event.EnemySplit, event.EnemySpawned,
		event.PlayerDamaged, event.PlayerDied, event.PickupCollected,
	} {
		d.Subscribe(t, w.events)
	}
	return w
}

func (w *world) addTree(x, y float64) {
	w.ecs.Scenery.Trees = append(w.ecs.Scenery.Trees, component.Tree{Pos: geom.V(x, y), Radius: 15, Scale: 1})
}

func (w *world) addEnemy(id defs.ArchetypeID, x, y float64) *component.Enemy {
	def := defs.Enemy(id)
	e := &component.Enemy{
		Pos:          geom.V(x, y),
		Archetype:    id,
		HP:           def.Health,
		MaxHP:        def.Health,
		Speed:        def.Speed,
		FireCooldown: 1000,
	}
	w.ecs.AddEnemy(e)
	return e
}
