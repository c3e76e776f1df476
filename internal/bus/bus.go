// Package bus provides the process-wide named-signal bus used for
// decoupled cross-component signaling (e.g. "a task was created",
// "resume the tour overlay").
package bus

import "sync"

// Signal is a named cross-component notification with optional payload.
type Signal struct {
	Name string
	Data map[string]string
}

// Bus is a synchronous publish/subscribe dispatcher. Handlers run on the
// publisher's goroutine, in subscription order.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(Signal)
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string]map[int]func(Signal))}
}

// Subscribe registers fn for signals with the given name and returns a
// cancel function. Cancel is idempotent.
func (b *Bus) Subscribe(name string, fn func(Signal)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.subs[name] == nil {
		b.subs[name] = make(map[int]func(Signal))
	}
	b.subs[name][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[name], id)
	}
}

// Publish delivers the signal to every subscriber of its name.
func (b *Bus) Publish(sig Signal) {
	b.mu.Lock()
	handlers := make([]func(Signal), 0, len(b.subs[sig.Name]))
	for _, fn := range b.subs[sig.Name] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(sig)
	}
}
