package detect

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/recovery"
	"github.com/studyloop/studyloop/internal/tour"
)

// Detection pacing. Steps override the timeout and retry count through
// their DetectionConfig; these cover everything else.
const (
	defaultTimeout = 10 * time.Second
	pollInterval   = 500 * time.Millisecond
	settleDelay    = 100 * time.Millisecond
	retryDelay     = 250 * time.Millisecond
)

// Predicate is a step-specific completion check run against the UI tree.
// Event and selector matching alone is too loose for some steps ("a task
// actually appeared", not "something was clicked near the task form").
type Predicate func(env Environment) bool

// shortcuts maps actions to the keyboard bindings that confirm them, so
// keyboard-only users are never blocked by pointer-oriented heuristics.
// Shortcuts are honored whenever an action has one, independently of
// whether the polling fallback is configured.
var shortcuts = map[tour.Action]string{
	tour.ActionChangeTab:         "tab",
	tour.ActionCreateTask:        "ctrl+n",
	tour.ActionRequestSuggestion: "ctrl+g",
	tour.ActionLogMood:           "ctrl+m",
}

// defaultPredicates holds the built-in completion checks. Actions without
// an entry complete on any matching event.
var defaultPredicates = map[tour.Action]Predicate{
	tour.ActionCreateTask: func(env Environment) bool {
		return env.Query("tasks.list.item")
	},
	tour.ActionRequestSuggestion: func(env Environment) bool {
		return env.Query("assistant.response")
	},
	tour.ActionLogMood: func(env Environment) bool {
		return env.Query("wellness.history.entry")
	},
}

// watch is the live detection state for one action: every cancel handle
// armed for it plus the at-most-once completion guard.
type watch struct {
	action     tour.Action
	cfg        tour.DetectionConfig
	onComplete func(tour.Action)
	onFail     func(error)
	onRetry    func(attempt int)

	attemptsLeft int
	done         bool
	cancels      []func()
}

// Detector implements the tour's ActionWatcher. It owns every listener and
// timer registered for detection; nothing else touches them.
type Detector struct {
	env        Environment
	errs       *recovery.Handler
	logger     *zap.Logger
	predicates map[tour.Action]Predicate

	mu     sync.Mutex
	active map[tour.Action]*watch
}

// New creates a Detector bound to env. errs and logger may be nil.
func New(env Environment, errs *recovery.Handler, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if errs == nil {
		errs = recovery.NewHandler(nil, logger)
	}
	preds := make(map[tour.Action]Predicate, len(defaultPredicates))
	for a, p := range defaultPredicates {
		preds[a] = p
	}
	return &Detector{
		env:        env,
		errs:       errs,
		logger:     logger,
		predicates: preds,
		active:     make(map[tour.Action]*watch),
	}
}

// RegisterPredicate overrides the completion check for an action.
func (d *Detector) RegisterPredicate(action tour.Action, p Predicate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.predicates[action] = p
}

// WatchAction arms every configured strategy for the action. A previous
// watch for the same action is superseded and torn down first. onComplete
// fires at most once no matter how many strategies trigger; onRetry fires
// before each re-arm; onFail fires after retries are exhausted. onRetry
// and onFail may be nil.
func (d *Detector) WatchAction(action tour.Action, cfg tour.DetectionConfig, onComplete func(tour.Action), onFail func(error), onRetry func(attempt int)) error {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	d.mu.Lock()
	if prev, ok := d.active[action]; ok {
		// Mark the superseded watch dead so a re-arm callback already
		// running on a timer goroutine cannot resurrect it.
		prev.done = true
		teardownLocked(prev)
		delete(d.active, action)
	}
	w := &watch{
		action:       action,
		cfg:          cfg,
		onComplete:   onComplete,
		onFail:       onFail,
		onRetry:      onRetry,
		attemptsLeft: cfg.Retries,
	}
	d.active[action] = w
	d.armLocked(w)
	d.mu.Unlock()

	d.logger.Debug("detection armed",
		zap.String("action", string(action)),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("retries", cfg.Retries),
	)
	return nil
}

// Cleanup tears down every active watch. Safe to call repeatedly.
func (d *Detector) Cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for a, w := range d.active {
		w.done = true
		teardownLocked(w)
		delete(d.active, a)
	}
}

// Watching reports whether detection is currently armed for the action.
func (d *Detector) Watching(action tour.Action) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.active[action]
	return ok
}

// armLocked registers one attempt's worth of strategies for w. Caller
// holds d.mu.
func (d *Detector) armLocked(w *watch) {
	cfg := w.cfg
	pred := d.predicates[w.action]

	// Primary: UI events whose target sits inside a primary selector.
	for _, kind := range cfg.EventKinds {
		kind := kind
		cancel := d.env.OnEvent(kind, func(ev Event) {
			if !matchesAny(ev.Target, cfg.PrimarySelectors) {
				return
			}
			if pred != nil && !pred(d.env) {
				return
			}
			d.complete(w)
		})
		w.cancels = append(w.cancels, cancel)
	}

	// Primary: the step's cross-component signal, when configured.
	if cfg.Signal != "" {
		cancel := d.env.OnSignal(cfg.Signal, func() {
			d.complete(w)
		})
		w.cancels = append(w.cancels, cancel)
	}

	// Primary: regions inserted asynchronously. The predicate is re-checked
	// shortly after insertion so effects that render late are still caught.
	selectors := append(append([]string(nil), cfg.PrimarySelectors...), cfg.FallbackSelectors...)
	cancel := d.env.ObserveInsertions(func(region string) {
		if !matchesAny(region, selectors) {
			return
		}
		recheck := d.env.After(settleDelay, func() {
			if pred == nil || pred(d.env) {
				d.complete(w)
			}
		})
		d.mu.Lock()
		if !w.done {
			w.cancels = append(w.cancels, recheck)
		} else {
			recheck()
		}
		d.mu.Unlock()
	})
	w.cancels = append(w.cancels, cancel)

	// Fallback: fixed-interval recheck against the fallback selectors.
	if len(cfg.FallbackSelectors) > 0 {
		cancel := d.env.Every(pollInterval, func() {
			for _, sel := range cfg.FallbackSelectors {
				if !d.env.Query(sel) {
					continue
				}
				if pred != nil && !pred(d.env) {
					continue
				}
				d.complete(w)
				return
			}
		})
		w.cancels = append(w.cancels, cancel)
	}

	// Fallback: the action's keyboard shortcut, when one is bound.
	if key, ok := shortcuts[w.action]; ok {
		cancel := d.env.OnEvent("key", func(ev Event) {
			if ev.Target != key {
				return
			}
			if pred != nil && !pred(d.env) {
				return
			}
			d.complete(w)
		})
		w.cancels = append(w.cancels, cancel)
	}

	// Timeout: the sole cancellation trigger. Re-arms while attempts
	// remain, then reports ActionTimeout.
	timeout := d.env.After(cfg.Timeout, func() {
		d.timedOut(w)
	})
	w.cancels = append(w.cancels, timeout)
}

// complete honors the first strategy to fire and tears everything down.
func (d *Detector) complete(w *watch) {
	d.mu.Lock()
	if w.done {
		d.mu.Unlock()
		return
	}
	w.done = true
	teardownLocked(w)
	delete(d.active, w.action)
	d.mu.Unlock()

	d.logger.Debug("action detected", zap.String("action", string(w.action)))
	if w.onComplete != nil {
		w.onComplete(w.action)
	}
}

// timedOut re-arms the watch while attempts remain, otherwise raises
// ActionTimeout through the error handler.
func (d *Detector) timedOut(w *watch) {
	d.mu.Lock()
	if w.done {
		d.mu.Unlock()
		return
	}
	teardownLocked(w)

	if w.attemptsLeft > 0 {
		w.attemptsLeft--
		attempt := w.cfg.Retries - w.attemptsLeft
		rearm := d.env.After(retryDelay, func() {
			d.mu.Lock()
			// A cancel cannot stop a timer callback that is already
			// running, so re-check that this watch is still the one
			// being tracked before registering anything.
			if !w.done && d.active[w.action] == w {
				d.armLocked(w)
			}
			d.mu.Unlock()
		})
		w.cancels = append(w.cancels, rearm)
		d.mu.Unlock()

		d.logger.Debug("detection retry scheduled",
			zap.String("action", string(w.action)),
			zap.Int("attempt", attempt),
			zap.Int("attempts_left", w.attemptsLeft),
		)
		if w.onRetry != nil {
			w.onRetry(attempt)
		}
		return
	}

	w.done = true
	delete(d.active, w.action)
	d.mu.Unlock()

	err := d.errs.NewError(recovery.CodeActionTimeout,
		"action was not observed before the deadline",
		recovery.Detail{Action: string(w.action)})
	if w.onFail != nil {
		w.onFail(err)
	}
}

// teardownLocked cancels every handle registered for w. Caller holds d.mu.
func teardownLocked(w *watch) {
	for _, cancel := range w.cancels {
		cancel()
	}
	w.cancels = nil
}
