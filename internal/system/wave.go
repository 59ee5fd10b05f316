package system

import (
	"log"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
	"sentinel-siege/internal/utils"
	"sentinel-siege/pkg/geom"
)

// WaveSystem — директор спавна: держит численность врагов на уровне,
// который задаёт текущая сложность.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	validity        *ValiditySystem
	rng             *utils.PRNGService
	failedAttempts  int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, validity *ValiditySystem, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		validity:        validity,
		rng:             rng,
	}
}

// DifficultyFor возвращает уровень сложности для счёта.
func DifficultyFor(score int) int {
	return score / config.ScorePerDifficulty
}

// EnemyCap — предельная численность врагов на уровне сложности.
func EnemyCap(difficulty int) int {
	return config.BaseEnemyCap + difficulty*config.EnemyCapPerLevel
}

// Update пересчитывает сложность и, если врагов меньше предела,
// пытается заспавнить одного.
func (s *WaveSystem) Update() {
	s.ecs.Difficulty = DifficultyFor(s.ecs.Score)
	if s.ecs.LiveEnemyCount() >= EnemyCap(s.ecs.Difficulty) {
		return
	}

	id := s.rng.ChooseWeighted(defs.SpawnWeights())
	def := defs.Enemy(id)
	pos, ok := s.findSpawnPoint(def)
	if !ok {
		s.failedAttempts++
		log.Printf("WaveSystem: no valid spawn point for %s, retrying next tick", id)
		return
	}

	level := float64(s.ecs.Difficulty)
	e := newEnemy(def, pos, 1+level*config.SpawnHPPerLevel, 1+level*config.SpawnSpeedPerLevel)
	e.FireCooldown = s.rng.IntInclusive(def.FireRate)
	s.ecs.AddEnemy(e)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// FailedAttempts — сколько тиков спавн пропускался из-за отсутствия места.
func (s *WaveSystem) FailedAttempts() int {
	return s.failedAttempts
}

// findSpawnPoint ищет точку на кольце у края арены. Снайперу дополнительно
// нужна прямая видимость центра.
func (s *WaveSystem) findSpawnPoint(def defs.EnemyDefinition) (geom.Vec2, bool) {
	ring := config.ArenaHalfSize - def.Radius - config.SpawnRingInset
	center := geom.V(0, 0)
	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		p := geom.FromAngle(s.rng.Angle()).Scale(ring)
		if !s.validity.PositionValidForEnemy(p, def.Radius) {
			continue
		}
		if def.ID == defs.ArchetypeSniper && !s.validity.LineOfSight(p, center) {
			continue
		}
		return p, true
	}
	return geom.Vec2{}, false
}

// InitialSpawn размещает стартовый состав без масштабирования по сложности
// в кольце ближе к центру, чем обычное кольцо спавна.
func (s *WaveSystem) InitialSpawn() {
	for _, group := range defs.InitialComposition {
		def := defs.Enemy(group.ID)
		for i := 0; i < group.Count; i++ {
			pos, ok := s.findInitialPoint(def)
			if !ok {
				log.Printf("WaveSystem: skipped initial %s, no valid position", group.ID)
				continue
			}
			e := newEnemy(def, pos, 1, 1)
			e.FireCooldown = s.rng.IntInclusive(def.FireRate)
			s.ecs.AddEnemy(e)
		}
	}
}

func (s *WaveSystem) findInitialPoint(def defs.EnemyDefinition) (geom.Vec2, bool) {
	for attempt := 0; attempt < config.MaxPlacementAttempts; attempt++ {
		dist := s.rng.Uniform(config.InitialSpawnRingMin, config.InitialSpawnRingMax)
		p := geom.FromAngle(s.rng.Angle()).Scale(dist)
		if s.validity.PositionValidForEnemy(p, def.Radius) {
			return p, true
		}
	}
	return geom.Vec2{}, false
}

// newEnemy создаёт врага с характеристиками, умноженными на коэффициенты сложности.
func newEnemy(def defs.EnemyDefinition, pos geom.Vec2, hpScale, speedScale float64) *component.Enemy {
	hp := def.Health * hpScale
	return &component.Enemy{
		Pos:       pos,
		Archetype: def.ID,
		HP:        hp,
		MaxHP:     hp,
		Speed:     def.Speed * speedScale,
	}
}
