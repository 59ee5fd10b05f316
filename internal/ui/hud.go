// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
)

// HUD рисует счёт, сложность, оружие и экраны паузы и конца игры.
type HUD struct {
	fontFace font.Face
	health   *PlayerHealthIndicator
	Debug    bool
}

func NewHUD() *HUD {
	face := basicfont.Face7x13
	return &HUD{
		fontFace: face,
		health:   NewPlayerHealthIndicator(config.HUDMarginX, config.HUDMarginY-12, face),
	}
}

// Lines возвращает строки статуса в порядке вывода.
func Lines(s Snapshot) []string {
	w := s.Weapon()
	weapon := w.Selected.String()
	if w.BurstRemaining > 0 {
		weapon = fmt.Sprintf("%s (%d left)", weapon, w.BurstRemaining)
	}
	return []string{
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Difficulty: %d", s.Difficulty()),
		fmt.Sprintf("Weapon: %s", weapon),
		fmt.Sprintf("Enemies: %d", len(s.Enemies())),
	}
}

// Banner возвращает заголовок и подсказку для экрана паузы или конца игры.
func Banner(s Snapshot) (title, hint string, ok bool) {
	switch s.State() {
	case component.Paused:
		return "PAUSED", "Space to resume, R to restart", true
	case component.Over:
		return "GAME OVER", fmt.Sprintf("Final score %d. Press R to restart", s.Score()), true
	}
	return "", "", false
}

func (h *HUD) Draw(screen *ebiten.Image, s Snapshot) {
	p := s.Player()
	h.health.Draw(screen, p.HP, p.MaxHP)

	y := config.HUDMarginY + int(h.health.GetHeight()) + config.HUDLineHeight
	for _, line := range Lines(s) {
		text.Draw(screen, line, h.fontFace, config.HUDMarginX, y, config.TextColor)
		y += config.HUDLineHeight
	}
	text.Draw(screen, "W/S move  A/D aim  1-4 weapon  Click/F fire  Space pause  R restart",
		h.fontFace, config.HUDMarginX, config.ScreenHeight-config.HUDMarginX, config.TextColor)

	if title, hint, ok := Banner(s); ok {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		h.centered(screen, title, config.ScreenHeight/2-10)
		h.centered(screen, hint, config.ScreenHeight/2+14)
	}

	if h.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			config.ScreenWidth-170, 4)
	}
}

func (h *HUD) centered(screen *ebiten.Image, s string, y int) {
	bounds := text.BoundString(h.fontFace, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, h.fontFace, x, y, config.TextColor)
}
