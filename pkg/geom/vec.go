// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a point or a displacement on the ground plane.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Normalize returns the unit vector and false for a zero-length input.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// PerpLeft rotates the vector by +90 degrees.
func (v Vec2) PerpLeft() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// PerpRight rotates the vector by -90 degrees.
func (v Vec2) PerpRight() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
