package detect

import (
	"sort"
	"sync"
	"time"
)

// FakeEnvironment is a deterministic Environment for tests: events, signals
// and region changes are injected by the test, and timers fire only when
// the manual clock is advanced. No real time passes.
type FakeEnvironment struct {
	mu        sync.Mutex
	now       time.Duration
	nextID    int
	events    map[int]eventSub
	signals   map[int]signalSub
	observers map[int]func(string)
	timers    map[int]*fakeTimer
	regions   map[string]bool
}

type eventSub struct {
	kind string
	fn   func(Event)
}

type signalSub struct {
	name string
	fn   func()
}

type fakeTimer struct {
	at       time.Duration
	interval time.Duration // zero for one-shot
	fn       func()
}

// NewFakeEnvironment creates an empty fake with the clock at zero.
func NewFakeEnvironment() *FakeEnvironment {
	return &FakeEnvironment{
		events:    make(map[int]eventSub),
		signals:   make(map[int]signalSub),
		observers: make(map[int]func(string)),
		timers:    make(map[int]*fakeTimer),
		regions:   make(map[string]bool),
	}
}

func (f *FakeEnvironment) OnEvent(kind string, fn func(Event)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.events[id] = eventSub{kind: kind, fn: fn}
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.events, id)
	}
}

func (f *FakeEnvironment) OnSignal(name string, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.signals[id] = signalSub{name: name, fn: fn}
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.signals, id)
	}
}

func (f *FakeEnvironment) ObserveInsertions(fn func(string)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.observers[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.observers, id)
	}
}

func (f *FakeEnvironment) Query(selector string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for region, present := range f.regions {
		if present && matchesSelector(region, selector) {
			return true
		}
	}
	return false
}

func (f *FakeEnvironment) After(d time.Duration, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.timers[id] = &fakeTimer{at: f.now + d, fn: fn}
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.timers, id)
	}
}

func (f *FakeEnvironment) Every(d time.Duration, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.timers[id] = &fakeTimer{at: f.now + d, interval: d, fn: fn}
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.timers, id)
	}
}

// FireEvent delivers a UI event to every subscriber of its kind.
func (f *FakeEnvironment) FireEvent(kind, target string) {
	f.mu.Lock()
	var fns []func(Event)
	for _, sub := range f.events {
		if sub.kind == kind {
			fns = append(fns, sub.fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(Event{Kind: kind, Target: target})
	}
}

// EmitSignal delivers a named signal to its subscribers.
func (f *FakeEnvironment) EmitSignal(name string) {
	f.mu.Lock()
	var fns []func()
	for _, sub := range f.signals {
		if sub.name == name {
			fns = append(fns, sub.fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// SetRegion marks a region present or absent in the UI tree.
func (f *FakeEnvironment) SetRegion(region string, present bool) {
	f.mu.Lock()
	f.regions[region] = present
	f.mu.Unlock()
}

// InsertRegion marks a region present and notifies insertion observers,
// mirroring a node being added to the live tree.
func (f *FakeEnvironment) InsertRegion(region string) {
	f.mu.Lock()
	f.regions[region] = true
	fns := make([]func(string), 0, len(f.observers))
	for _, fn := range f.observers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(region)
	}
}

// Advance moves the clock forward, firing due timers in order. Callbacks
// may register further timers; those fire too if they fall within d.
func (f *FakeEnvironment) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	for {
		id, tm := f.nextDueLocked(target)
		if tm == nil {
			break
		}
		f.now = tm.at
		fn := tm.fn
		if tm.interval > 0 {
			tm.at += tm.interval
		} else {
			delete(f.timers, id)
		}
		f.mu.Unlock()
		fn()
		f.mu.Lock()
	}
	f.now = target
	f.mu.Unlock()
}

// nextDueLocked returns the earliest timer due at or before target,
// breaking ties by registration order so runs are reproducible.
func (f *FakeEnvironment) nextDueLocked(target time.Duration) (int, *fakeTimer) {
	ids := make([]int, 0, len(f.timers))
	for id := range f.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bestID := -1
	var best *fakeTimer
	for _, id := range ids {
		tm := f.timers[id]
		if tm.at > target {
			continue
		}
		if best == nil || tm.at < best.at {
			bestID, best = id, tm
		}
	}
	return bestID, best
}

// ActiveTimers counts scheduled timers; zero after a clean teardown.
func (f *FakeEnvironment) ActiveTimers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// ActiveHandlers counts event, signal and insertion subscriptions.
func (f *FakeEnvironment) ActiveHandlers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events) + len(f.signals) + len(f.observers)
}
