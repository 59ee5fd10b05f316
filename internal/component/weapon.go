package component

import (
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

// WeaponState хранит выбор оружия и общие счётчики перезарядки.
type WeaponState struct {
	Selected       defs.WeaponType
	Cooldown       int // общий для всех видов оружия
	BurstRemaining int
	TriggerHeld    bool // удержание огня для лазера
}

// Laser описывает луч, активный в текущем тике.
type Laser struct {
	Active bool
	From   geom.Vec2
	To     geom.Vec2
}
