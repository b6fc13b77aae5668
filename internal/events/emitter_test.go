package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeEmit(t *testing.T) {
	e := New[string]()

	var got []string
	e.Subscribe(func(v string) { got = append(got, v) })
	e.Subscribe(func(v string) { got = append(got, v+"-second") })

	e.Emit("hello")

	assert.Equal(t, []string{"hello", "hello-second"}, got)
}

func TestUnsubscribe(t *testing.T) {
	e := New[int]()

	var count int
	sub := e.Subscribe(func(int) { count++ })

	e.Emit(1)
	sub.Unsubscribe()
	e.Emit(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, e.Len())
}

func TestUnsubscribeTwice(t *testing.T) {
	e := New[int]()

	sub := e.Subscribe(func(int) {})
	other := e.Subscribe(func(int) {})

	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.Equal(t, 1, e.Len())
	other.Unsubscribe()
	assert.Equal(t, 0, e.Len())
}

func TestEmitWithNoListeners(t *testing.T) {
	e := New[struct{}]()
	e.Emit(struct{}{}) // must not panic
}

func TestDispatchOrder(t *testing.T) {
	e := New[int]()

	var order []int
	for i := 0; i < 5; i++ {
		n := i
		e.Subscribe(func(int) { order = append(order, n) })
	}

	e.Emit(0)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
