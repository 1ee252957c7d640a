package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchInRegistrationOrder(t *testing.T) {
	d := NewDispatcher[string, int]()

	var calls []string
	d.Subscribe("change", func(v int) { calls = append(calls, "first") })
	d.Subscribe("change", func(v int) { calls = append(calls, "second") })
	d.Subscribe("lock", func(v int) { calls = append(calls, "lock") })

	d.Dispatch("change", 1)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribeRemovesExactRegistration(t *testing.T) {
	d := NewDispatcher[string, int]()

	var got []int
	a := d.Subscribe("change", func(v int) { got = append(got, v) })
	b := d.Subscribe("change", func(v int) { got = append(got, v*10) })
	require.NotEqual(t, a, b)

	assert.True(t, d.Unsubscribe("change", a))
	assert.False(t, d.Unsubscribe("change", a))
	assert.False(t, d.Unsubscribe("lock", b))

	d.Dispatch("change", 2)
	assert.Equal(t, []int{20}, got)
	assert.Equal(t, 1, d.Count("change"))

	assert.True(t, d.Unsubscribe("change", b))
	assert.Equal(t, 0, d.Count("change"))
}

func TestSubscribeNilHandler(t *testing.T) {
	d := NewDispatcher[string, int]()
	assert.Equal(t, SubscriptionID(0), d.Subscribe("change", nil))
	assert.Equal(t, 0, d.Count("change"))
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher[string, int]()

	calls := 0
	var id SubscriptionID
	id = d.Subscribe("change", func(int) {
		calls++
		d.Unsubscribe("change", id)
	})
	d.Subscribe("change", func(int) { calls++ })

	d.Dispatch("change", 0)
	assert.Equal(t, 2, calls)

	d.Dispatch("change", 0)
	assert.Equal(t, 3, calls)
}

func TestUnsubscribeDuringDispatchSkipsLaterHandler(t *testing.T) {
	d := NewDispatcher[string, int]()
	var later SubscriptionID
	var calls []string
	d.Subscribe("change", func(int) {
		calls = append(calls, "first")
		assert.True(t, d.Unsubscribe("change", later))
	})
	later = d.Subscribe("change", func(int) { calls = append(calls, "later") })

	d.Dispatch("change", 0)
	d.Dispatch("change", 0)

	assert.Equal(t, []string{"first", "first"}, calls)
	assert.Equal(t, 1, d.Count("change"))
}
