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
	a, b := &recorder{}, &recorder{}
	d.Subscribe(MouseClicked, a)
	d.Subscribe(MouseClicked, b)

	d.Dispatch(Event{Type: MouseClicked, Data: Click{X: 1, Y: 2}})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, Click{X: 1, Y: 2}, a.got[0].Data)
}

func TestDispatcher_OtherTypesNotDelivered(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(MouseClicked, r)

	d.Dispatch(Event{Type: "Other"})
	assert.Empty(t, r.got)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(MouseClicked, a)
	d.Subscribe(MouseClicked, b)
	d.Unsubscribe(MouseClicked, a)

	d.Dispatch(Event{Type: MouseClicked})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)

	// отписка неизвестного слушателя ничего не ломает
	d.Unsubscribe(MouseClicked, a)
	d.Unsubscribe("Other", a)
	d.Dispatch(Event{Type: MouseClicked})
	assert.Len(t, b.got, 2)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	fn := ListenerFunc(func(Event) { calls++ })
	r := &recorder{}
	d.Subscribe(MouseClicked, fn)
	d.Subscribe(MouseClicked, r)

	d.Dispatch(Event{Type: MouseClicked})
	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() {
		d.Unsubscribe(MouseClicked, fn)
		d.Unsubscribe(MouseClicked, r)
	})
	d.Dispatch(Event{Type: MouseClicked})
	assert.Equal(t, 2, calls, "functions stay subscribed")
	assert.Len(t, r.got, 1)
}
