package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/defs"
	"sentinel-siege/pkg/geom"
)

type stubSnapshot struct {
	score   int
	weapon  component.WeaponState
	state   component.GameState
	enemies []component.Enemy
}

func (s stubSnapshot) Player() component.Player                { return component.Player{HP: 500, MaxHP: 500} }
func (s stubSnapshot) Enemies() []component.Enemy              { return s.enemies }
func (s stubSnapshot) Shots() []component.Projectile           { return nil }
func (s stubSnapshot) EnemyShots() []component.EnemyProjectile { return nil }
func (s stubSnapshot) Pickup() component.HealthPickup          { return component.HealthPickup{} }
func (s stubSnapshot) Scenery() component.Scenery              { return component.Scenery{} }
func (s stubSnapshot) Score() int                              { return s.score }
func (s stubSnapshot) Difficulty() int                         { return s.score / 30 }
func (s stubSnapshot) Weapon() component.WeaponState           { return s.weapon }
func (s stubSnapshot) Laser() component.Laser                  { return component.Laser{} }
func (s stubSnapshot) State() component.GameState              { return s.state }
func (s stubSnapshot) EnemyPulse() float64                     { return 0 }

func TestLines(t *testing.T) {
	s := stubSnapshot{
		score:   65,
		weapon:  component.WeaponState{Selected: defs.WeaponBurst, BurstRemaining: 2},
		enemies: make([]component.Enemy, 4),
	}

	lines := Lines(s)

	require.Len(t, lines, 4)
	assert.Equal(t, "Score: 65", lines[0])
	assert.Equal(t, "Difficulty: 2", lines[1])
	assert.Equal(t, "Weapon: Burst (2 left)", lines[2])
	assert.Equal(t, "Enemies: 4", lines[3])
}

func TestBanner(t *testing.T) {
	_, _, ok := Banner(stubSnapshot{state: component.Playing})
	assert.False(t, ok)

	title, _, ok := Banner(stubSnapshot{state: component.Paused})
	assert.True(t, ok)
	assert.Equal(t, "PAUSED", title)

	title, hint, ok := Banner(stubSnapshot{state: component.Over, score: 40})
	assert.True(t, ok)
	assert.Equal(t, "GAME OVER", title)
	assert.Contains(t, hint, "40")
}

func TestFacing(t *testing.T) {
	dir, ok := Facing(geom.V(0, 0), geom.V(0, 10))
	require.True(t, ok)
	assert.InDelta(t, 1, dir.Y, 1e-9)

	_, ok = Facing(geom.V(3, 3), geom.V(3, 3))
	assert.False(t, ok)
}
