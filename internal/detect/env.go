// Package detect observes the running UI for the user actions the tour
// waits on. Several strategies race per action; the first to fire wins and
// every listener and timer armed for that action is torn down immediately.
package detect

import "time"

// Event is one UI interaction surfaced to the detector. Target is the
// logical path of the region the event happened in ("tasks.form.submit").
type Event struct {
	Kind   string
	Target string
}

// Environment is the narrow capability surface the detector needs from the
// UI runtime. The production implementation is fed by the application's
// update loop; tests use a deterministic fake with a manual clock.
type Environment interface {
	// OnEvent subscribes to UI events of the given kind. The returned
	// cancel removes the subscription and is safe to call repeatedly.
	OnEvent(kind string, fn func(Event)) (cancel func())

	// OnSignal subscribes to a named cross-component signal.
	OnSignal(name string, fn func()) (cancel func())

	// ObserveInsertions reports regions newly added to the UI tree.
	ObserveInsertions(fn func(region string)) (cancel func())

	// Query reports whether a region matching the selector currently
	// exists in the UI tree.
	Query(selector string) bool

	// After schedules fn once after d. Cancel discards a pending fire.
	After(d time.Duration, fn func()) (cancel func())

	// Every schedules fn repeatedly at interval d until cancelled.
	Every(d time.Duration, fn func()) (cancel func())
}

// matchesSelector reports whether a target path is the selector itself or
// contained within it ("tasks.form.submit" matches "tasks.form").
func matchesSelector(target, selector string) bool {
	if target == selector {
		return true
	}
	return len(target) > len(selector) &&
		target[:len(selector)] == selector &&
		target[len(selector)] == '.'
}

// matchesAny reports whether target matches at least one selector.
func matchesAny(target string, selectors []string) bool {
	for _, sel := range selectors {
		if matchesSelector(target, sel) {
			return true
		}
	}
	return false
}
