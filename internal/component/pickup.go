package component

import "sentinel-siege/pkg/geom"

// HealthPickup — единственная аптечка на арене. Никогда не уничтожается, только перемещается.
type HealthPickup struct {
	Pos    geom.Vec2
	Pulse  float64
	Radius float64
}
