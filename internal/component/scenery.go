package component

import "sentinel-siege/pkg/geom"

// Tree — статическое препятствие. Scale влияет только на отрисовку.
type Tree struct {
	Pos    geom.Vec2
	Radius float64
	Scale  float64
}

// Pond рисуется, но не мешает ни движению, ни линии видимости.
type Pond struct {
	Pos    geom.Vec2
	Radius float64
}

// Scenery неизменна после генерации до следующего рестарта.
type Scenery struct {
	Trees []Tree
	Pond  Pond
}
