package render

import "sentinel-siege/pkg/geom"

// Camera maps world coordinates (Y up) to screen pixels (Y down),
// keeping Center in the middle of the screen.
type Camera struct {
	Center       geom.Vec2
	Zoom         float64
	ScreenWidth  int
	ScreenHeight int
}

func NewCamera(screenWidth, screenHeight int, zoom float64) *Camera {
	return &Camera{Zoom: zoom, ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Vec2) (float32, float32) {
	x := (p.X-c.Center.X)*c.Zoom + float64(c.ScreenWidth)/2
	y := float64(c.ScreenHeight)/2 - (p.Y-c.Center.Y)*c.Zoom
	return float32(x), float32(y)
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float32) geom.Vec2 {
	return geom.V(
		(float64(x)-float64(c.ScreenWidth)/2)/c.Zoom+c.Center.X,
		(float64(c.ScreenHeight)/2-float64(y))/c.Zoom+c.Center.Y,
	)
}

// Length scales a world distance to pixels.
func (c *Camera) Length(d float64) float32 {
	return float32(d * c.Zoom)
}

// Visible reports whether a circle of world radius r around p touches the screen.
func (c *Camera) Visible(p geom.Vec2, r float64) bool {
	x, y := c.WorldToScreen(p)
	pr := c.Length(r)
	return x+pr >= 0 && y+pr >= 0 && x-pr <= float32(c.ScreenWidth) && y-pr <= float32(c.ScreenHeight)
}
