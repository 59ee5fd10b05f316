// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что StateSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type GameContext interface {
	ClearEnemies()
	ClearProjectiles()
	ResetMatch()
}
