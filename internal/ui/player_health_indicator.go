// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sentinel-siege/internal/config"
	"sentinel-siege/pkg/render"
)

const (
	HealthBarWidth  = 200
	HealthBarHeight = 14
)

// PlayerHealthIndicator отображает здоровье игрока полоской в углу экрана.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

// Draw рисует полоску и подпись "HP: текущее/максимум".
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = health / maxHealth
	}
	fill := render.HealthColor(ratio, config.HealthGood, config.HealthWarn, config.HealthLow)

	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth*float32(ratio), HealthBarHeight, fill, false)
	vector.StrokeRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, 1, config.TextColor, false)

	label := fmt.Sprintf("HP: %.0f/%.0f", health, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X)+HealthBarWidth+8, int(i.Y)+HealthBarHeight-2, config.TextColor)
}

// GetHeight возвращает высоту индикатора вместе с отступом.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return HealthBarHeight + 6
}
