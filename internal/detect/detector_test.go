package detect

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/studyloop/studyloop/internal/recovery"
	"github.com/studyloop/studyloop/internal/tour"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// capture collects detection outcomes for assertions.
type capture struct {
	mu        sync.Mutex
	completed []tour.Action
	failed    []error
}

func (c *capture) onComplete(a tour.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed = append(c.completed, a)
}

func (c *capture) onFail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed = append(c.failed, err)
}

func (c *capture) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.completed), len(c.failed)
}

func tabConfig() tour.DetectionConfig {
	return tour.DetectionConfig{
		PrimarySelectors: []string{"tabs"},
		EventKinds:       []string{"click"},
		Signal:           tour.SignalTabChanged,
		Timeout:          5 * time.Second,
	}
}

func taskConfig() tour.DetectionConfig {
	return tour.DetectionConfig{
		PrimarySelectors:  []string{"tasks.form"},
		FallbackSelectors: []string{"tasks.list.item"},
		EventKinds:        []string{"submit"},
		Signal:            tour.SignalTaskCreated,
		Timeout:           5 * time.Second,
	}
}

func TestPrimaryEventCompletes(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)
	env.FireEvent("click", "tabs.wellness")

	done, failed := c.counts()
	if done != 1 || failed != 0 {
		t.Fatalf("completed=%d failed=%d, want 1/0", done, failed)
	}
	if env.ActiveHandlers() != 0 || env.ActiveTimers() != 0 {
		t.Errorf("leaked handlers=%d timers=%d after completion",
			env.ActiveHandlers(), env.ActiveTimers())
	}
}

func TestEventOutsideSelectorsIgnored(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)
	env.FireEvent("click", "tasks.form.submit")
	env.FireEvent("scroll", "tabs.wellness")

	if done, _ := c.counts(); done != 0 {
		t.Fatalf("completed=%d, want 0", done)
	}
}

func TestSignalCompletes(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)
	env.EmitSignal(tour.SignalTabChanged)

	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d, want 1", done)
	}
}

func TestPredicateBlocksPrematureCompletion(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	// A click near the form is not a created task.
	d.WatchAction(tour.ActionCreateTask, taskConfig(), c.onComplete, c.onFail, nil)
	env.FireEvent("submit", "tasks.form")
	if done, _ := c.counts(); done != 0 {
		t.Fatalf("completed=%d before task exists, want 0", done)
	}

	env.SetRegion("tasks.list.item", true)
	env.FireEvent("submit", "tasks.form")
	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d after task exists, want 1", done)
	}
}

func TestPollingFallbackCompletes(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionCreateTask, taskConfig(), c.onComplete, c.onFail, nil)

	env.Advance(pollInterval)
	if done, _ := c.counts(); done != 0 {
		t.Fatalf("poll fired with no task present")
	}

	env.SetRegion("tasks.list.item", true)
	env.Advance(pollInterval)
	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d via polling, want 1", done)
	}
}

func TestInsertionObserverRechecksAfterSettle(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionCreateTask, taskConfig(), c.onComplete, c.onFail, nil)
	env.InsertRegion("tasks.list.item")

	// The recheck waits for the UI to settle.
	if done, _ := c.counts(); done != 0 {
		t.Fatalf("completed before settle delay")
	}
	env.Advance(settleDelay)
	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d after settle, want 1", done)
	}
}

func TestKeyboardShortcutCompletes(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	// No fallback selectors configured; the shortcut still works.
	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)
	env.FireEvent("key", "tab")

	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d via shortcut, want 1", done)
	}
}

func TestRacingStrategiesFireOnce(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionCreateTask, taskConfig(), c.onComplete, c.onFail, nil)
	env.SetRegion("tasks.list.item", true)

	// Event, signal and poll would each confirm; only the first counts.
	env.FireEvent("submit", "tasks.form")
	env.EmitSignal(tour.SignalTaskCreated)
	env.Advance(pollInterval)

	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d, want exactly 1", done)
	}
}

func TestTimeoutWithZeroRetriesFailsOnce(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	cfg := tabConfig()
	cfg.Timeout = 5 * time.Second
	cfg.Retries = 0
	d.WatchAction(tour.ActionChangeTab, cfg, c.onComplete, c.onFail, nil)

	env.Advance(cfg.Timeout - time.Millisecond)
	if _, failed := c.counts(); failed != 0 {
		t.Fatal("timed out early")
	}

	env.Advance(time.Millisecond)
	done, failed := c.counts()
	if done != 0 || failed != 1 {
		t.Fatalf("completed=%d failed=%d, want 0/1", done, failed)
	}

	var re *recovery.Error
	if !errors.As(c.failed[0], &re) || re.Code != recovery.CodeActionTimeout {
		t.Fatalf("error = %v, want action_timeout", c.failed[0])
	}
	if re.Retryable {
		t.Error("action timeout must not be retryable")
	}

	// No retry attempt: advancing further changes nothing.
	env.Advance(time.Minute)
	if _, failed := c.counts(); failed != 1 {
		t.Fatalf("failed=%d after extra time, want 1", failed)
	}
	if env.ActiveTimers() != 0 || env.ActiveHandlers() != 0 {
		t.Errorf("leaked handlers=%d timers=%d after failure",
			env.ActiveHandlers(), env.ActiveTimers())
	}
}

func TestTimeoutRetriesThenSucceeds(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	cfg := tabConfig()
	cfg.Retries = 1
	d.WatchAction(tour.ActionChangeTab, cfg, c.onComplete, c.onFail, nil)

	// First attempt times out; the watch re-arms after a short delay.
	env.Advance(cfg.Timeout)
	if done, failed := c.counts(); done != 0 || failed != 0 {
		t.Fatalf("completed=%d failed=%d during retry window, want 0/0", done, failed)
	}

	env.Advance(retryDelay)
	env.FireEvent("click", "tabs.tasks")
	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d on second attempt, want 1", done)
	}
}

func TestTimeoutRetriesThenFails(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	cfg := tabConfig()
	cfg.Retries = 2
	d.WatchAction(tour.ActionChangeTab, cfg, c.onComplete, c.onFail, nil)

	env.Advance(3*cfg.Timeout + 3*retryDelay)
	done, failed := c.counts()
	if done != 0 || failed != 1 {
		t.Fatalf("completed=%d failed=%d, want 0/1", done, failed)
	}
	if env.ActiveTimers() != 0 || env.ActiveHandlers() != 0 {
		t.Errorf("leaked handlers=%d timers=%d", env.ActiveHandlers(), env.ActiveTimers())
	}
}

func TestTimeoutRetryReportsAttempts(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	var attempts []int
	cfg := tabConfig()
	cfg.Retries = 2
	d.WatchAction(tour.ActionChangeTab, cfg, c.onComplete, c.onFail, func(attempt int) {
		attempts = append(attempts, attempt)
	})

	env.Advance(3*cfg.Timeout + 3*retryDelay)

	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("retry attempts = %v, want [1 2]", attempts)
	}
	if _, failed := c.counts(); failed != 1 {
		t.Fatalf("failed=%d after retries exhausted, want 1", failed)
	}
}

// stickyTimerEnv mirrors the production clock: cancelling a timer whose
// callback has already been taken off the queue does not stop it. Timer
// callbacks are run manually so tests can interleave them with teardown.
type stickyTimerEnv struct {
	mu       sync.Mutex
	handlers int
	timers   []func()
}

func (e *stickyTimerEnv) addHandler() func() {
	e.mu.Lock()
	e.handlers++
	e.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			e.handlers--
			e.mu.Unlock()
		})
	}
}

func (e *stickyTimerEnv) OnEvent(string, func(Event)) func()     { return e.addHandler() }
func (e *stickyTimerEnv) OnSignal(string, func()) func()         { return e.addHandler() }
func (e *stickyTimerEnv) ObserveInsertions(func(string)) func()  { return e.addHandler() }
func (e *stickyTimerEnv) Query(string) bool                      { return false }
func (e *stickyTimerEnv) Every(time.Duration, func()) func()     { return e.addHandler() }

func (e *stickyTimerEnv) After(_ time.Duration, fn func()) func() {
	e.mu.Lock()
	e.timers = append(e.timers, fn)
	e.mu.Unlock()
	return func() {} // already in flight, cannot be stopped
}

// runTimer fires the i-th scheduled timer callback.
func (e *stickyTimerEnv) runTimer(i int) {
	e.mu.Lock()
	fn := e.timers[i]
	e.mu.Unlock()
	fn()
}

func (e *stickyTimerEnv) handlerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handlers
}

func TestInFlightRearmAfterCleanupDoesNotResurrect(t *testing.T) {
	env := &stickyTimerEnv{}
	d := New(env, nil, nil)
	var c capture

	cfg := tabConfig()
	cfg.Retries = 1
	d.WatchAction(tour.ActionChangeTab, cfg, c.onComplete, c.onFail, nil)

	// Timer 0 is the attempt timeout; firing it schedules the re-arm
	// (timer 1) and cancels the attempt's listeners.
	env.runTimer(0)
	if got := env.handlerCount(); got != 0 {
		t.Fatalf("handlers=%d during retry window, want 0", got)
	}

	// Teardown races the pending re-arm: its cancel cannot stop the
	// callback, which fires afterwards anyway.
	d.Cleanup()
	env.runTimer(1)

	if got := env.handlerCount(); got != 0 {
		t.Fatalf("handlers=%d after late re-arm, want 0 (watch resurrected)", got)
	}
	if d.Watching(tour.ActionChangeTab) {
		t.Error("watch tracked again after cleanup")
	}
	if done, failed := c.counts(); done != 0 || failed != 0 {
		t.Fatalf("completed=%d failed=%d after cleanup, want 0/0", done, failed)
	}
}

func TestInFlightRearmAfterSupersedeDoesNotResurrect(t *testing.T) {
	env := &stickyTimerEnv{}
	d := New(env, nil, nil)
	var old, current capture

	cfg := tabConfig()
	cfg.Retries = 1
	d.WatchAction(tour.ActionChangeTab, cfg, old.onComplete, old.onFail, nil)

	env.runTimer(0) // old watch times out, re-arm pending

	d.WatchAction(tour.ActionChangeTab, cfg, current.onComplete, current.onFail, nil)
	baseline := env.handlerCount()

	env.runTimer(1) // old watch's re-arm fires anyway

	if got := env.handlerCount(); got != baseline {
		t.Fatalf("handlers=%d after late re-arm, want %d (old watch resurrected)", got, baseline)
	}
	if !d.Watching(tour.ActionChangeTab) {
		t.Error("current watch lost")
	}
	if done, _ := old.counts(); done != 0 {
		t.Error("superseded watch completed")
	}
}

func TestRearmSupersedesPreviousWatch(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var first, second capture

	d.WatchAction(tour.ActionChangeTab, tabConfig(), first.onComplete, first.onFail, nil)
	d.WatchAction(tour.ActionChangeTab, tabConfig(), second.onComplete, second.onFail, nil)

	env.FireEvent("click", "tabs.wellness")
	if done, _ := first.counts(); done != 0 {
		t.Error("superseded watch still fired")
	}
	if done, _ := second.counts(); done != 1 {
		t.Error("active watch did not fire")
	}
}

func TestCleanupTearsDownEverything(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)
	d.WatchAction(tour.ActionCreateTask, taskConfig(), c.onComplete, c.onFail, nil)

	d.Cleanup()
	d.Cleanup() // repeat must be safe

	if env.ActiveHandlers() != 0 || env.ActiveTimers() != 0 {
		t.Fatalf("leaked handlers=%d timers=%d after cleanup",
			env.ActiveHandlers(), env.ActiveTimers())
	}

	env.FireEvent("click", "tabs.wellness")
	env.Advance(time.Minute)
	done, failed := c.counts()
	if done != 0 || failed != 0 {
		t.Fatalf("completed=%d failed=%d after cleanup, want 0/0", done, failed)
	}
	if d.Watching(tour.ActionChangeTab) {
		t.Error("watch still registered after cleanup")
	}
}

func TestRegisterPredicateOverride(t *testing.T) {
	env := NewFakeEnvironment()
	d := New(env, nil, nil)
	var c capture

	d.RegisterPredicate(tour.ActionChangeTab, func(env Environment) bool {
		return env.Query("tabs.wellness")
	})
	d.WatchAction(tour.ActionChangeTab, tabConfig(), c.onComplete, c.onFail, nil)

	env.FireEvent("click", "tabs.wellness")
	if done, _ := c.counts(); done != 0 {
		t.Fatal("predicate ignored")
	}

	env.SetRegion("tabs.wellness", true)
	env.FireEvent("click", "tabs.wellness")
	if done, _ := c.counts(); done != 1 {
		t.Fatalf("completed=%d, want 1", done)
	}
}

func TestMatchesSelector(t *testing.T) {
	cases := []struct {
		target, selector string
		want             bool
	}{
		{"tasks.form", "tasks.form", true},
		{"tasks.form.submit", "tasks.form", true},
		{"tasks.formlike", "tasks.form", false},
		{"tasks", "tasks.form", false},
		{"wellness.log", "tasks.form", false},
	}
	for _, tc := range cases {
		if got := matchesSelector(tc.target, tc.selector); got != tc.want {
			t.Errorf("matchesSelector(%q, %q) = %v, want %v",
				tc.target, tc.selector, got, tc.want)
		}
	}
}
