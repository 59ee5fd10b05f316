package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/utils"
	"sentinel-siege/pkg/geom"
)

// CombatSystem обновляет врагов за один тик: смерть и награда, отсрочка,
// подрыв камикадзе, движение к игроку и стрельба.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
	validity        *ValiditySystem
	rng             *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, movement *MovementSystem, validity *ValiditySystem, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		movement:        movement,
		validity:        validity,
		rng:             rng,
	}
}

func (s *CombatSystem) Update() {
	player := s.ecs.Player

	// Осколки сплиттера добавляются в конец и в этом тике не обрабатываются.
	n := len(s.ecs.Enemies)
	for i := 0; i < n; i++ {
		e := s.ecs.Enemies[i]
		if e.Removed {
			continue
		}
		if e.Dead() {
			s.kill(e)
			continue
		}
		if e.Grace > 0 {
			e.Grace--
			continue
		}

		def := e.Def()
		toPlayer := player.Pos.Sub(e.Pos)
		dist := toPlayer.Len()

		if def.Kamikaze() && dist < def.Radius+player.Radius+config.KamikazeProximityBonus {
			ApplyPlayerDamage(s.ecs, s.eventDispatcher, def.KamikazeDamage)
			e.HP = 0
			continue
		}

		if !def.Stationary() && dist > def.StopDistance {
			s.movement.SteerEnemy(e, toPlayer)
		}

		s.updateFire(e, def, toPlayer)
	}

	s.ecs.CompactEnemies()
}

// updateFire стреляет в направлении, вычисленном до шага движения.
func (s *CombatSystem) updateFire(e *component.Enemy, def defs.EnemyDefinition, toPlayer geom.Vec2) {
	if e.FireCooldown > 0 {
		e.FireCooldown--
	}
	if e.FireCooldown > 0 || !def.Fires() {
		return
	}
	aim, ok := toPlayer.Normalize()
	if !ok {
		return
	}
	if !s.validity.LineOfSight(e.Pos, s.ecs.Player.Pos) {
		return
	}

	e.FireCooldown = def.FireRate
	s.ecs.AddEnemyShot(&component.EnemyProjectile{
		Pos:    e.Pos,
		Vel:    aim.Scale(def.BulletSpeed),
		Damage: def.BulletDamage,
		Owner:  e.Archetype,
	})
}

// kill помечает врага удалённым и начисляет награду ровно один раз.
func (s *CombatSystem) kill(e *component.Enemy) {
	def := e.Def()
	e.Removed = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Archetype: e.Archetype, Reward: def.Reward, Pos: e.Pos},
	})
	if e.Archetype == defs.ArchetypeSplitter {
		s.split(e.Pos)
	}
}

func (s *CombatSystem) split(at geom.Vec2) {
	def := defs.Enemy(defs.SplitInto)
	level := float64(s.ecs.Difficulty)
	for i := 0; i < config.SplitChildren; i++ {
		offset := geom.V(
			s.rng.Uniform(-config.SplitJitter, config.SplitJitter),
			s.rng.Uniform(-config.SplitJitter, config.SplitJitter),
		)
		child := newEnemy(def, at.Add(offset),
			1+level*config.SplitHPPerLevel,
			1+level*config.SplitSpeedPerLevel)
		child.FireCooldown = def.FireRate
		child.Grace = config.SplitGraceTicks
		s.ecs.AddEnemy(child)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySplit, Data: at})
}
