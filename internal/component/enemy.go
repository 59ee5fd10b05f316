// internal/component/enemy.go
package component

import (
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

// Enemy представляет вражескую сущность. Идентичность — членство в списке врагов.
type Enemy struct {
	Pos          geom.Vec2
	Archetype    defs.ArchetypeID
	HP           float64
	MaxHP        float64 // фиксируется при спавне
	Speed        float64 // уже с учётом сложности
	Grace        int     // пока > 0, враг не двигается и не стреляет
	FireCooldown int
	Removed      bool // помечен на удаление, вычищается CompactEnemies
}

// Def возвращает определение архетипа врага.
func (e *Enemy) Def() defs.EnemyDefinition {
	return defs.Enemy(e.Archetype)
}

// Radius — радиус столкновений архетипа.
func (e *Enemy) Radius() float64 {
	return e.Def().Radius
}

// Dead сообщает, что здоровье исчерпано.
func (e *Enemy) Dead() bool {
	return e.HP <= 0
}

// HPRatio используется для полосок здоровья и затемнения цвета.
func (e *Enemy) HPRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return geom.Clamp(e.HP/e.MaxHP, 0, 1)
}
