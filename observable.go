package timepicker

import "sync"

// Observable is a value container that notifies subscribers when the value
// changes. Hosts use it to push locale changes into pickers.
type Observable[T comparable] struct {
	mu        sync.Mutex
	value     T
	listeners []func(T)
}

// NewObservable creates an observable holding v.
func NewObservable[T comparable](v T) *Observable[T] {
	return &Observable[T]{value: v}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and notifies subscribers if it differs from the current value.
// Listeners run after the lock is released, so one that unsubscribes while
// Set is running may still be called once.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	if o.value == v {
		o.mu.Unlock()
		return
	}
	o.value = v
	listeners := make([]func(T), len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, fn := range listeners {
		if fn != nil {
			fn(v)
		}
	}
}

// Subscribe adds a change listener and returns an unsubscribe function.
// Unsubscribing more than once is harmless.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, fn)
	idx := len(o.listeners) - 1
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		// Zero out to keep other indices stable
		o.listeners[idx] = nil
	}
}

// Subscribers returns the number of live listeners.
func (o *Observable[T]) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, fn := range o.listeners {
		if fn != nil {
			n++
		}
	}
	return n
}
