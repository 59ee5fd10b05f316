package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/event"
)

type fakeContext struct {
	resets int
}

func (f *fakeContext) ClearEnemies()     {}
func (f *fakeContext) ClearProjectiles() {}
func (f *fakeContext) ResetMatch()       { f.resets++ }

func TestState_TogglePause(t *testing.T) {
	w := newWorld()
	ss := NewStateSystem(w.ecs, &fakeContext{}, w.dispatcher)

	ss.TogglePause()
	assert.Equal(t, component.Paused, ss.Current())
	ss.TogglePause()
	assert.Equal(t, component.Playing, ss.Current())

	w.ecs.GameState = component.Over
	ss.TogglePause()
	assert.Equal(t, component.Over, ss.Current())
}

func TestState_PlayerDiedEndsMatch(t *testing.T) {
	w := newWorld()
	ss := NewStateSystem(w.ecs, &fakeContext{}, w.dispatcher)
	w.ecs.Laser.Active = true

	ApplyPlayerDamage(w.ecs, w.dispatcher, config.PlayerMaxHP+50)

	assert.Equal(t, component.Over, ss.Current())
	assert.Equal(t, 0.0, w.ecs.Player.HP)
	assert.False(t, w.ecs.Laser.Active)
	assert.Equal(t, 1, w.events.count(event.PlayerDied))

	ApplyPlayerDamage(w.ecs, w.dispatcher, 10)
	assert.Equal(t, 1, w.events.count(event.PlayerDamaged), "no damage after death")
}

func TestState_CheckPlayer(t *testing.T) {
	w := newWorld()
	ss := NewStateSystem(w.ecs, &fakeContext{}, w.dispatcher)

	assert.False(t, ss.CheckPlayer())
	w.ecs.Player.HP = 0
	assert.True(t, ss.CheckPlayer())
	assert.Equal(t, component.Over, ss.Current())
}

func TestState_RestartFromAnyState(t *testing.T) {
	w := newWorld()
	ctx := &fakeContext{}
	ss := NewStateSystem(w.ecs, ctx, w.dispatcher)

	for _, from := range []component.GameState{component.Playing, component.Paused, component.Over} {
		w.ecs.GameState = from
		ss.Restart()
		assert.Equal(t, component.Playing, ss.Current(), "from %s", from)
	}
	assert.Equal(t, 3, ctx.resets)
}

func TestPlayerSystem_AddsReward(t *testing.T) {
	w := newWorld()
	ps := NewPlayerSystem(w.ecs)

	ps.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Reward: 15}})
	ps.OnEvent(event.Event{Type: event.EnemyKilled, Data: "garbage"})
	ps.OnEvent(event.Event{Type: event.PlayerDied})

	assert.Equal(t, 15, w.ecs.Score)
}

func TestVisualEffect_Pulses(t *testing.T) {
	w := newWorld()
	ve := NewVisualEffectSystem(w.ecs)

	ve.Update()
	ve.Update()

	assert.InDelta(t, 0.2, w.ecs.Pickup.Pulse, 1e-9)
	assert.InDelta(t, 0.24, w.ecs.EnemyPulse, 1e-9)
}
