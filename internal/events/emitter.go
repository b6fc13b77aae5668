package events

import (
	"sync"

	"github.com/google/uuid"
)

// Emitter broadcasts values of type T to subscribed callbacks.
// Dispatch is synchronous: Emit returns after every callback has run,
// in subscription order.
type Emitter[T any] struct {
	mu        sync.RWMutex
	listeners map[string]func(T)
	order     []string
}

// Subscription identifies one registered listener. Releasing it detaches
// the listener; releasing twice is harmless.
type Subscription struct {
	id   string
	once sync.Once
	drop func(id string)
}

// Unsubscribe detaches the listener from its emitter.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() { s.drop(s.id) })
}

// New creates an emitter with no listeners.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{listeners: make(map[string]func(T))}
}

// Subscribe registers fn and returns a handle for removal.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription {
	id := uuid.NewString()

	e.mu.Lock()
	e.listeners[id] = fn
	e.order = append(e.order, id)
	e.mu.Unlock()

	return &Subscription{id: id, drop: e.remove}
}

// Emit invokes every registered listener with ev.
func (e *Emitter[T]) Emit(ev T) {
	e.mu.RLock()
	fns := make([]func(T), 0, len(e.order))
	for _, id := range e.order {
		if fn, ok := e.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	e.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Len returns the number of active listeners.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

func (e *Emitter[T]) remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.listeners, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}
