package detect

import (
	"sync"
	"time"

	"github.com/studyloop/studyloop/internal/bus"
)

// Runtime is the production Environment. The application's update loop
// feeds it UI events and region changes; signals ride the shared bus;
// timers are real.
type Runtime struct {
	bus *bus.Bus

	mu        sync.Mutex
	nextID    int
	events    map[int]eventSub
	observers map[int]func(string)
	regions   map[string]bool
}

// NewRuntime creates a Runtime publishing and subscribing on b.
func NewRuntime(b *bus.Bus) *Runtime {
	return &Runtime{
		bus:       b,
		events:    make(map[int]eventSub),
		observers: make(map[int]func(string)),
		regions:   make(map[string]bool),
	}
}

func (r *Runtime) OnEvent(kind string, fn func(Event)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.events[id] = eventSub{kind: kind, fn: fn}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.events, id)
	}
}

func (r *Runtime) OnSignal(name string, fn func()) func() {
	return r.bus.Subscribe(name, func(bus.Signal) { fn() })
}

func (r *Runtime) ObserveInsertions(fn func(string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.observers[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.observers, id)
	}
}

func (r *Runtime) Query(selector string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for region, present := range r.regions {
		if present && matchesSelector(region, selector) {
			return true
		}
	}
	return false
}

func (r *Runtime) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func (r *Runtime) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}
}

// FireEvent delivers a UI event. Called from the application's update
// loop whenever the user interacts with a tracked region.
func (r *Runtime) FireEvent(kind, target string) {
	r.mu.Lock()
	var fns []func(Event)
	for _, sub := range r.events {
		if sub.kind == kind {
			fns = append(fns, sub.fn)
		}
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn(Event{Kind: kind, Target: target})
	}
}

// SetRegion records whether a region is currently rendered.
func (r *Runtime) SetRegion(region string, present bool) {
	r.mu.Lock()
	r.regions[region] = present
	r.mu.Unlock()
}

// InsertRegion records a newly rendered region and notifies observers.
func (r *Runtime) InsertRegion(region string) {
	r.mu.Lock()
	r.regions[region] = true
	fns := make([]func(string), 0, len(r.observers))
	for _, fn := range r.observers {
		fns = append(fns, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn(region)
	}
}
