// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sentinel-siege/internal/config"
)

// MenuState — титульный экран, Space начинает партию
type MenuState struct {
	sm    *StateMachine
	input Input
	seed  int64
}

func NewMenuState(sm *StateMachine, input Input, seed int64) *MenuState {
	return &MenuState{sm: sm, input: input, seed: seed}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if m.input.KeyJustPressed(ebiten.KeySpace) || m.input.KeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewPlayState(m.sm, m.input, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{"SENTINEL SIEGE", "", "Press Space to start"}
	y := config.ScreenHeight/2 - 20
	for _, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-w)/2, y, config.TextColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
