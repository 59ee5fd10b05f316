// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
