package event

import (
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, Data: EnemyKilledData
	EnemySplit      EventType = "EnemySplit"      // Сплиттер распался, Data: geom.Vec2
	EnemySpawned    EventType = "EnemySpawned"    // Data: defs.ArchetypeID
	PlayerDamaged   EventType = "PlayerDamaged"   // Data: float64 (урон)
	PlayerDied      EventType = "PlayerDied"      // Здоровье игрока достигло нуля
	PickupCollected EventType = "PickupCollected" // Аптечка подобрана, Data: geom.Vec2 (новая позиция)
)

// EnemyKilledData — полезная нагрузка события EnemyKilled.
type EnemyKilledData struct {
	Archetype defs.ArchetypeID
	Reward    int
	Pos       geom.Vec2
}
