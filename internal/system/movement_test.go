package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

func TestTryMove_AlongBarrel(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player

	require.True(t, w.movement.TryMove(Forward))
	assert.InDelta(t, config.PlayerMoveStep, p.Pos.X, 1e-9)
	assert.InDelta(t, config.PlayerStartY, p.Pos.Y, 1e-9)

	require.True(t, w.movement.TryMove(Backward))
	assert.InDelta(t, 0, p.Pos.X, 1e-9)
}

func TestTryMove_SlidesAlongObstacle(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player
	p.Pos = geom.V(0, 0)
	p.Heading = 45
	w.addTree(52, 0)

	require.True(t, w.movement.TryMove(Forward))
	assert.Equal(t, 0.0, p.Pos.X, "x step runs into the tree")
	assert.InDelta(t, config.PlayerMoveStep*math.Sqrt2/2, p.Pos.Y, 1e-9)
	assert.True(t, w.validity.PositionValidForPlayer(p.Pos))
}

func TestTryMove_BlockedByWall(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player
	p.Pos = geom.V(1770, 0)

	assert.False(t, w.movement.TryMove(Forward))
	assert.Equal(t, geom.V(1770, 0), p.Pos)
}

func TestTryRotate(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player

	require.True(t, w.movement.TryRotate(Left))
	assert.InDelta(t, 2.5, p.Heading, 1e-9)

	require.True(t, w.movement.TryRotate(Right))
	require.True(t, w.movement.TryRotate(Right))
	assert.InDelta(t, 357.5, p.Heading, 1e-9)
}

func TestTryRotate_BlockedByTree(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player
	p.Pos = geom.V(0, 0)
	w.addTree(54.9, 2.4)

	assert.False(t, w.movement.TryRotate(Left))
	assert.Equal(t, 0.0, p.Heading)
}

func TestTryRotate_BlockedByEnemy(t *testing.T) {
	w := newWorld()
	p := w.ecs.Player
	p.Pos = geom.V(0, 0)
	w.addEnemy(defs.ArchetypeGrunt, 55, 10)

	assert.False(t, w.movement.TryRotate(Left))
	assert.Equal(t, 0.0, p.Heading)
}

func TestSteerEnemy_Direct(t *testing.T) {
	w := newWorld()
	e := w.addEnemy(defs.ArchetypeGrunt, 0, 0)

	require.True(t, w.movement.SteerEnemy(e, geom.V(100, 0)))
	assert.InDelta(t, 1.8, e.Pos.X, 1e-9)
	assert.InDelta(t, 0, e.Pos.Y, 1e-9)
}

func TestSteerEnemy_SidestepsLeftFirst(t *testing.T) {
	w := newWorld()
	e := w.addEnemy(defs.ArchetypeGrunt, 0, 0)
	w.addTree(36.5, 0)

	require.True(t, w.movement.SteerEnemy(e, geom.V(100, 0)))
	assert.InDelta(t, 0, e.Pos.X, 1e-9)
	assert.InDelta(t, 1.8, e.Pos.Y, 1e-9)
}

func TestSteerEnemy_StationaryAndDegenerate(t *testing.T) {
	w := newWorld()
	sniper := w.addEnemy(defs.ArchetypeSniper, 0, 0)
	grunt := w.addEnemy(defs.ArchetypeGrunt, 200, 0)

	assert.False(t, w.movement.SteerEnemy(sniper, geom.V(100, 0)))
	assert.False(t, w.movement.SteerEnemy(grunt, geom.V(0, 0)))
	assert.Equal(t, geom.V(200, 0), grunt.Pos)
}
