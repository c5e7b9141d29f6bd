// Package event is a typed publish/subscribe registry.
package event

import "sync"

// Event delivers values of type T to its subscribers, synchronously and in subscription order.
// The zero value is ready to use.
type Event[T any] struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers []subscriber[T]
	current     T
	emitted     bool
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns the function that removes it.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.subscribers = append(e.subscribers, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.subscribers {
				if s.id == id {
					e.subscribers = append(e.subscribers[:i:i], e.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Emit records v as the current value and calls every subscriber with it.
func (e *Event[T]) Emit(v T) {
	e.mu.Lock()
	e.current = v
	e.emitted = true
	subscribers := e.subscribers
	e.mu.Unlock()

	for _, s := range subscribers {
		s.fn(v)
	}
}

// Current returns the last emitted value and whether anything was emitted yet.
func (e *Event[T]) Current() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.emitted
}

// SubscriberCount returns the number of live subscriptions.
func (e *Event[T]) SubscriberCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subscribers)
}

// Subscriptions collects unsubscribe functions so they can be released together.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add keeps unsubscribe until Close.
func (s *Subscriptions) Add(unsubscribe ...func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubs = append(s.unsubs, unsubscribe...)
}

// Close releases every collected subscription, most recent first.
func (s *Subscriptions) Close() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for i := len(unsubs) - 1; i >= 0; i-- {
		unsubs[i]()
	}
}
