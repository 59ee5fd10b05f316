package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &recorder{}
	died := &recorder{}
	d.Subscribe(EnemyKilled, killed)
	d.Subscribe(PlayerDied, died)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Reward: 5}})

	assert.Len(t, killed.got, 1)
	assert.Equal(t, 5, killed.got[0].Data.(EnemyKilledData).Reward)
	assert.Empty(t, died.got)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PickupCollected, r)
	d.Unsubscribe(PickupCollected, r)

	d.Dispatch(Event{Type: PickupCollected})

	assert.Empty(t, r.got)
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: EnemySpawned}) })
}
