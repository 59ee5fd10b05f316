// internal/system/utils.go
package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/entity"
	"sentinel-siege/internal/event"
)

// ApplyDamage наносит урон врагу. Смерть обрабатывает CombatSystem
// в начале обновления этого врага, поэтому здесь здоровье не ограничивается.
func ApplyDamage(e *component.Enemy, damage float64) {
	if e.Removed || damage <= 0 {
		return
	}
	e.HP -= damage
}

// ApplyPlayerDamage наносит урон игроку и сообщает об этом подписчикам.
func ApplyPlayerDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, damage float64) {
	if damage <= 0 || !ecs.Player.Alive() {
		return
	}
	died := ecs.Player.TakeDamage(damage)
	dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: damage})
	if died {
		dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}
