package tour

import (
	"slices"
	"time"

	"github.com/studyloop/studyloop/internal/store"
)

// NewProgress creates a fresh progress record positioned at first.
func NewProgress(userID string, first Step) *store.Progress {
	now := time.Now()
	return &store.Progress{
		UserID:         userID,
		CurrentStep:    string(first),
		CompletedSteps: []string{},
		StepData:       make(map[string][]string),
		StartedAt:      now,
		LastSeenAt:     now,
	}
}

// markStepCompleted appends step to the completed list. Re-marking an
// already-completed step is a no-op; the list never holds duplicates.
func markStepCompleted(p *store.Progress, step Step) {
	if slices.Contains(p.CompletedSteps, string(step)) {
		return
	}
	p.CompletedSteps = append(p.CompletedSteps, string(step))
}

// markAction records a completed sub-action for the given step. Returns
// false if the action was already recorded.
func markAction(p *store.Progress, step Step, action Action) bool {
	if p.StepData == nil {
		p.StepData = make(map[string][]string)
	}
	done := p.StepData[string(step)]
	if slices.Contains(done, string(action)) {
		return false
	}
	p.StepData[string(step)] = append(done, string(action))
	return true
}

// actionDone reports whether the action was recorded for the step.
func actionDone(p *store.Progress, step Step, action Action) bool {
	if p.StepData == nil {
		return false
	}
	return slices.Contains(p.StepData[string(step)], string(action))
}

// terminal reports whether no further transitions (other than restart)
// are allowed.
func terminal(p *store.Progress) bool {
	return p.IsCompleted || p.IsSkipped
}
