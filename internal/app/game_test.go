package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/system"
	"sentinel-siege/pkg/geom"
)

// quietGame — партия без деревьев и врагов, враги не появляются сами.
func quietGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(42)
	g.ECS.Scenery.Trees = nil
	g.ClearEnemies()
	g.ClearProjectiles()
	g.ECS.Pickup.Pos = geom.V(0, 1000)
	return g
}

func TestNewGame(t *testing.T) {
	g := NewGame(42)

	assert.Equal(t, component.Playing, g.State())
	assert.Equal(t, config.PlayerMaxHP, g.Player().HP)
	assert.Len(t, g.Enemies(), 7)
	assert.NotEmpty(t, g.Scenery().Trees)
	assert.LessOrEqual(t, len(g.Scenery().Trees), config.TreeCount)
	assert.Equal(t, defs.WeaponNormal, g.Weapon().Selected)

	dist := g.Pickup().Pos.Len()
	assert.GreaterOrEqual(t, dist, config.PickupMinDist)
	assert.LessOrEqual(t, dist, config.PickupMaxDist)
}

func TestNewGame_SceneryRules(t *testing.T) {
	g := NewGame(3)
	s := g.Scenery()

	for _, tree := range s.Trees {
		assert.Greater(t, tree.Pos.Len(), config.TreeCenterClear)
		assert.Greater(t, tree.Pos.Dist(s.Pond.Pos), s.Pond.Radius+config.TreeRadius)
		assert.LessOrEqual(t, tree.Pos.X, config.ArenaHalfSize-config.TreeEdgeBuffer)
		assert.GreaterOrEqual(t, tree.Pos.Y, -config.ArenaHalfSize+config.TreeEdgeBuffer)
		assert.GreaterOrEqual(t, tree.Scale, config.TreeMinScale)
		assert.Less(t, tree.Scale, config.TreeMaxScale)
	}
	assert.True(t, g.ValiditySystem.PositionValidForPlayer(g.Player().Pos))
}

func TestNewGame_Deterministic(t *testing.T) {
	a := NewGame(99)
	b := NewGame(99)
	for i := 0; i < 120; i++ {
		a.Tick()
		b.Tick()
	}

	assert.Equal(t, a.Scenery(), b.Scenery())
	assert.Equal(t, a.Enemies(), b.Enemies())
	assert.Equal(t, a.Pickup(), b.Pickup())
}

func TestTick_KillScoredOnNextTick(t *testing.T) {
	g := quietGame(t)
	e := &component.Enemy{Pos: geom.V(100, -150), Archetype: defs.ArchetypeGrunt, HP: 1, MaxHP: 60, FireCooldown: 1000}
	g.ECS.AddEnemy(e)

	g.Fire()
	g.Tick()
	g.Tick()
	assert.True(t, e.Dead())
	assert.Equal(t, 0, g.Score())

	g.Tick()
	assert.Equal(t, 5, g.Score())
	for _, other := range g.Enemies() {
		assert.NotEqual(t, geom.V(100, -150), other.Pos)
	}
}

func TestTick_PickupHeals(t *testing.T) {
	g := quietGame(t)
	g.ECS.Player.HP = 100
	g.ECS.Pickup.Pos = g.ECS.Player.Pos

	g.Tick()

	assert.Equal(t, config.PlayerMaxHP, g.Player().HP)
	assert.Greater(t, g.Pickup().Pos.Dist(g.Player().Pos), 100.0)
}

func TestRestartWhileOver(t *testing.T) {
	g := quietGame(t)
	g.ECS.Score = 90
	g.ECS.Player.HP = 0

	g.Tick()
	require.Equal(t, component.Over, g.State())
	tick := g.ECS.Tick
	g.Tick()
	assert.Equal(t, tick, g.ECS.Tick, "no simulation while over")

	g.MovePlayer(system.Forward)
	assert.Equal(t, geom.V(config.PlayerStartX, config.PlayerStartY), g.Player().Pos)

	g.Restart()
	assert.Equal(t, component.Playing, g.State())
	assert.Equal(t, config.PlayerMaxHP, g.Player().HP)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Difficulty())
	assert.Len(t, g.Enemies(), 7)
	assert.Empty(t, g.Shots())
	assert.Empty(t, g.EnemyShots())
}

func TestPauseIgnoresCommands(t *testing.T) {
	g := quietGame(t)
	g.TogglePause()
	require.Equal(t, component.Paused, g.State())

	g.MovePlayer(system.Forward)
	g.RotateGun(system.Left)
	g.Fire()
	g.Tick()

	assert.Equal(t, geom.V(config.PlayerStartX, config.PlayerStartY), g.Player().Pos)
	assert.Equal(t, 0.0, g.Player().Heading)
	assert.Empty(t, g.Shots())
	assert.Equal(t, uint64(0), g.ECS.Tick)

	g.SelectWeapon(defs.WeaponLaser)
	assert.Equal(t, defs.WeaponLaser, g.Weapon().Selected)

	g.TogglePause()
	g.MovePlayer(system.Forward)
	assert.InDelta(t, config.PlayerMoveStep, g.Player().Pos.X, 1e-9)
}

func TestLaserHeldThroughTicks(t *testing.T) {
	g := quietGame(t)
	e := &component.Enemy{Pos: geom.V(400, -150), Archetype: defs.ArchetypeTank, HP: 200, MaxHP: 200, FireCooldown: 1000}
	g.ECS.AddEnemy(e)
	g.SelectWeapon(defs.WeaponLaser)
	g.SetContinuousFire(true)

	for i := 0; i < 10; i++ {
		g.Tick()
	}

	assert.True(t, g.Laser().Active)
	assert.Less(t, e.HP, 200.0)
	assert.Equal(t, e.Pos, g.Laser().To)

	g.SetContinuousFire(false)
	g.Tick()
	assert.False(t, g.Laser().Active)
}

func TestSnapshotsAreCopies(t *testing.T) {
	g := NewGame(5)
	enemies := g.Enemies()
	require.NotEmpty(t, enemies)
	enemies[0].HP = -1

	p := g.Player()
	p.HP = 1

	assert.NotEqual(t, -1.0, g.ECS.Enemies[0].HP)
	assert.Equal(t, config.PlayerMaxHP, g.Player().HP)
}
