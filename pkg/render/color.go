package render

import "image/color"

// ArenaColors holds the colors needed to render the arena and its entities.
type ArenaColors struct {
	Background  color.RGBA
	Wall        color.RGBA
	Pond        color.RGBA
	Tree        color.RGBA
	Trunk       color.RGBA
	Player      color.RGBA
	Gun         color.RGBA
	Pickup      color.RGBA
	Bullet      color.RGBA
	Shockwave   color.RGBA
	Laser       color.RGBA
	Text        color.RGBA
	HealthBack  color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ShadeColor(c, 0.5)
}

// ShadeColor scales the RGB channels by factor, clamped to [0, 1].
func ShadeColor(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// HealthColor picks green, yellow or red for a health ratio.
func HealthColor(ratio float64, good, warn, low color.RGBA) color.RGBA {
	switch {
	case ratio > 0.6:
		return good
	case ratio > 0.3:
		return warn
	default:
		return low
	}
}
