package observable

import (
	"sync"
	"sync/atomic"
)

// Value holds the latest snapshot of T and notifies subscribers on every change.
// Snapshots must be treated as immutable once stored. Concurrent writers must be
// serialised by the owner for subscribers to see snapshots in commit order.
type Value[T any] struct {
	current atomic.Pointer[T]

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(T)
}

func NewValue[T any](initial T) *Value[T] {
	v := &Value[T]{
		subscribers: make(map[int]func(T)),
	}
	v.current.Store(&initial)

	return v
}

func (v *Value[T]) Load() T {
	return *v.current.Load()
}

func (v *Value[T]) Store(next T) {
	v.current.Store(&next)
	v.notify(next)
}

// Update replaces the snapshot with fn(current). fn may be called more than once
// when updates race, so it must not have side effects.
func (v *Value[T]) Update(fn func(T) T) T {
	for {
		prev := v.current.Load()
		next := fn(*prev)
		if v.current.CompareAndSwap(prev, &next) {
			v.notify(next)
			return next
		}
	}
}

// Subscribe registers fn to receive every new snapshot. The returned func
// removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()

		delete(v.subscribers, id)
	}
}

func (v *Value[T]) notify(next T) {
	v.mu.Lock()
	subscribers := make([]func(T), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		subscribers = append(subscribers, fn)
	}
	v.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
}
