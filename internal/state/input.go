// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input отделяет опрос клавиатуры и мыши от логики экранов.
type Input interface {
	KeyHeld(key ebiten.Key) bool
	KeyJustPressed(key ebiten.Key) bool
	MouseHeld() bool
	MouseJustPressed() bool
}

// EbitenInput читает реальное устройство ввода.
type EbitenInput struct{}

func (EbitenInput) KeyHeld(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenInput) MouseHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
