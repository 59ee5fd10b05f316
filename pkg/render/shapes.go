package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sentinel-siege/pkg/geom"
)

// Shapes рисует примитивы в мировых координатах через камеру.
type Shapes struct {
	Camera *Camera
}

func (s Shapes) Circle(dst *ebiten.Image, center geom.Vec2, r float64, clr color.Color) {
	if !s.Camera.Visible(center, r) {
		return
	}
	x, y := s.Camera.WorldToScreen(center)
	vector.DrawFilledCircle(dst, x, y, s.Camera.Length(r), clr, true)
}

func (s Shapes) Ring(dst *ebiten.Image, center geom.Vec2, r float64, width float32, clr color.Color) {
	if !s.Camera.Visible(center, r) {
		return
	}
	x, y := s.Camera.WorldToScreen(center)
	vector.StrokeCircle(dst, x, y, s.Camera.Length(r), width, clr, true)
}

func (s Shapes) Line(dst *ebiten.Image, a, b geom.Vec2, width float32, clr color.Color) {
	x0, y0 := s.Camera.WorldToScreen(a)
	x1, y1 := s.Camera.WorldToScreen(b)
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

// Bar рисует полоску заполнения над точкой мира (полоски здоровья).
func (s Shapes) Bar(dst *ebiten.Image, above geom.Vec2, offset, width float64, ratio float64, fill, back color.Color) {
	if !s.Camera.Visible(above, offset+width) {
		return
	}
	x, y := s.Camera.WorldToScreen(above)
	w := s.Camera.Length(width)
	h := float32(4)
	left := x - w/2
	top := y - s.Camera.Length(offset) - h
	vector.DrawFilledRect(dst, left, top, w, h, back, false)
	vector.DrawFilledRect(dst, left, top, w*float32(geom.Clamp(ratio, 0, 1)), h, fill, false)
}

// Square рисует контур квадрата с центром в начале координат.
func (s Shapes) Square(dst *ebiten.Image, halfSize float64, width float32, clr color.Color) {
	x0, y0 := s.Camera.WorldToScreen(geom.V(-halfSize, halfSize))
	side := s.Camera.Length(2 * halfSize)
	vector.StrokeRect(dst, x0, y0, side, side, width, clr, true)
}
