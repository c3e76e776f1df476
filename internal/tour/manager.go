package tour

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/recovery"
	"github.com/studyloop/studyloop/internal/store"
)

// ActionWatcher is the detection collaborator for interactive steps. The
// manager never touches listeners or timers directly; it owns progress,
// the watcher owns observation.
type ActionWatcher interface {
	// WatchAction arms detection for the action. onComplete fires at most
	// once; onRetry fires before each timeout re-arm with the attempt
	// number; onFail fires after retries are exhausted.
	WatchAction(action Action, cfg DetectionConfig, onComplete func(Action), onFail func(error), onRetry func(attempt int)) error

	// Cleanup tears down every active listener and timer.
	Cleanup()
}

// Deps bundles the manager's collaborators. Progress is required; the
// rest may be nil and degrade gracefully.
type Deps struct {
	Progress  store.ProgressRepo
	Rewards   store.RewardRepo
	Analytics *Analytics
	Errors    *recovery.Handler
	Watcher   ActionWatcher
	Bus       *bus.Bus
	Logger    *zap.Logger
}

// Manager is the single source of truth for a user's position in the tour
// and the only component permitted to mutate the progress record.
type Manager struct {
	repo      store.ProgressRepo
	rewards   store.RewardRepo
	analytics *Analytics
	errs      *recovery.Handler
	watcher   ActionWatcher
	bus       *bus.Bus
	logger    *zap.Logger

	cfg   Config
	steps []StepConfig
	index map[Step]int
}

// NewManager creates a Manager driving the given resolved step sequence.
func NewManager(steps []StepConfig, cfg Config, deps Deps) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	errs := deps.Errors
	if errs == nil {
		errs = recovery.NewHandler(nil, logger)
	}

	index := make(map[Step]int, len(steps))
	for i, s := range steps {
		index[s.ID] = i
	}

	return &Manager{
		repo:      deps.Progress,
		rewards:   deps.Rewards,
		analytics: deps.Analytics,
		errs:      errs,
		watcher:   deps.Watcher,
		bus:       deps.Bus,
		logger:    logger,
		cfg:       cfg,
		steps:     steps,
		index:     index,
	}
}

// Steps returns the resolved step sequence.
func (m *Manager) Steps() []StepConfig { return m.steps }

// StepConfigFor returns the configuration for a step, if it is part of the
// resolved sequence.
func (m *Manager) StepConfigFor(step Step) (StepConfig, bool) {
	i, ok := m.index[step]
	if !ok {
		return StepConfig{}, false
	}
	return m.steps[i], true
}

func (m *Manager) firstStep() Step { return m.steps[0].ID }

// successor returns the step after index i, or StepCompletion past the end.
func (m *Manager) successor(i int) Step {
	if i+1 < len(m.steps) {
		return m.steps[i+1].ID
	}
	return StepCompletion
}

// Initialize creates a new progress record at the first step if none
// exists. Failure to reach the store is an InitializationFailed error
// (retryable).
func (m *Manager) Initialize(ctx context.Context, userID string) (*store.Progress, error) {
	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return nil, m.errs.NewError(recovery.CodeInitializationFailed,
			"could not load onboarding progress", recovery.Detail{Cause: err})
	}
	if p != nil {
		return p, nil
	}

	p = NewProgress(userID, m.firstStep())
	if err := m.repo.Upsert(ctx, p); err != nil {
		return nil, m.errs.NewError(recovery.CodeInitializationFailed,
			"could not create onboarding progress", recovery.Detail{Cause: err})
	}

	if m.analytics != nil {
		m.analytics.Emit(userID, m.firstStep(), EventStarted, EventDetail{})
	}
	return p, nil
}

// Progress fetches the user's progress with bounded exponential backoff.
// After all attempts are exhausted it returns (nil, nil) — "no progress
// yet" — so a flaky store never hard-fails the UI.
func (m *Manager) Progress(ctx context.Context, userID string) (*store.Progress, error) {
	var lastErr error
	for attempt := range m.cfg.FetchAttempts {
		p, err := m.repo.Get(ctx, userID)
		if err == nil {
			return p, nil
		}
		lastErr = err

		if attempt == m.cfg.FetchAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.backoff(attempt)):
		}
	}

	m.errs.NewError(recovery.CodeNetworkError,
		"progress fetch failed after retries", recovery.Detail{Cause: lastErr})
	m.logger.Warn("progress unavailable, treating as none",
		zap.String("user_id", userID), zap.Error(lastErr))
	return nil, nil
}

// backoff computes the wait before the next fetch attempt, with ±20% jitter.
func (m *Manager) backoff(attempt int) time.Duration {
	wait := float64(m.cfg.FetchBackoffInitial) * math.Pow(m.cfg.FetchBackoffMultiplier, float64(attempt))
	if wait > float64(m.cfg.FetchBackoffMax) {
		wait = float64(m.cfg.FetchBackoffMax)
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

// Advance validates fromStep, records its completion (idempotently) and
// moves to its successor, marking the tour completed when the successor is
// the terminal step. Persist failures are DatabaseError (retryable).
func (m *Manager) Advance(ctx context.Context, userID string, from Step) (*store.Progress, error) {
	started := time.Now()
	p, err := m.transition(ctx, userID, from)
	if err != nil {
		return nil, err
	}
	if m.analytics != nil {
		m.analytics.Emit(userID, from, EventCompleted, EventDetail{Duration: time.Since(started)})
	}
	m.grantRewards(ctx, userID, from)
	return p, nil
}

// grantRewards looks up rewards attached to a completed step. Best-effort:
// a reward lookup failure never fails the transition that earned it.
func (m *Manager) grantRewards(ctx context.Context, userID string, step Step) {
	if m.rewards == nil {
		return
	}
	rewards, err := m.rewards.ActiveForStep(ctx, string(step))
	if err != nil {
		m.logger.Warn("reward lookup failed",
			zap.String("step", string(step)),
			zap.Error(err),
		)
		return
	}
	for _, r := range rewards {
		m.logger.Info("reward granted",
			zap.String("user_id", userID),
			zap.String("reward_id", r.RewardID),
			zap.String("name", r.Name),
			zap.Int("points", r.Points),
		)
		if m.bus != nil {
			m.bus.Publish(bus.Signal{
				Name: SignalRewardGranted,
				Data: map[string]string{
					"user_id":   userID,
					"reward_id": r.RewardID,
					"name":      r.Name,
					"icon":      r.Icon,
					"points":    strconv.Itoa(r.Points),
				},
			})
		}
	}
}

// SkipStep performs the same transition as Advance; the distinction is
// analytics-only.
func (m *Manager) SkipStep(ctx context.Context, userID string, step Step) (*store.Progress, error) {
	if m.analytics != nil {
		m.analytics.Emit(userID, step, EventSkipped, EventDetail{})
	}
	return m.transition(ctx, userID, step)
}

// transition is the single state-machine edge shared by Advance and
// SkipStep.
func (m *Manager) transition(ctx context.Context, userID string, from Step) (*store.Progress, error) {
	idx, ok := m.index[from]
	if !ok {
		return nil, m.errs.NewError(recovery.CodeInvalidState,
			"unrecognized step", recovery.Detail{Step: string(from)})
	}

	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not load progress", recovery.Detail{Step: string(from), Cause: err})
	}
	if p == nil {
		return nil, m.errs.NewError(recovery.CodeInvalidState,
			"no progress record", recovery.Detail{Step: string(from)})
	}
	if terminal(p) {
		return p, nil
	}

	next := m.successor(idx)
	now := time.Now()

	markStepCompleted(p, from)
	p.CurrentStep = string(next)
	p.LastSeenAt = now
	p.ErrorCount = 0
	if next == StepCompletion {
		p.IsCompleted = true
		p.CompletedAt = &now
	}

	if err := m.repo.Upsert(ctx, p); err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not persist transition", recovery.Detail{Step: string(from), Cause: err})
	}

	m.logger.Info("step transition",
		zap.String("user_id", userID),
		zap.String("from", string(from)),
		zap.String("to", string(next)),
	)
	return p, nil
}

// SkipTutorial terminates the tour from any state. Idempotent.
func (m *Manager) SkipTutorial(ctx context.Context, userID string) (*store.Progress, error) {
	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not load progress", recovery.Detail{Cause: err})
	}
	if p == nil {
		return nil, m.errs.NewError(recovery.CodeInvalidState, "no progress record", recovery.Detail{})
	}
	if p.IsSkipped && p.IsCompleted {
		return p, nil
	}

	now := time.Now()
	p.IsSkipped = true
	p.IsCompleted = true
	p.CompletedAt = &now
	p.LastSeenAt = now

	if err := m.repo.Upsert(ctx, p); err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not persist skip", recovery.Detail{Cause: err})
	}

	if m.analytics != nil {
		m.analytics.Emit(userID, Step(p.CurrentStep), EventSkipped, EventDetail{})
	}
	return p, nil
}

// Restart resets progress to the first step. Always allowed, even from a
// terminal state. Creates the record if none exists.
func (m *Manager) Restart(ctx context.Context, userID string) (*store.Progress, error) {
	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not load progress", recovery.Detail{Cause: err})
	}

	now := time.Now()
	if p == nil {
		p = NewProgress(userID, m.firstStep())
	} else {
		p.CurrentStep = string(m.firstStep())
		p.CompletedSteps = []string{}
		p.IsCompleted = false
		p.IsSkipped = false
		p.StepData = make(map[string][]string)
		p.StartedAt = now
		p.LastSeenAt = now
		p.CompletedAt = nil
		p.ErrorCount = 0
	}

	if err := m.repo.Upsert(ctx, p); err != nil {
		return nil, m.errs.NewError(recovery.CodeDatabaseError,
			"could not persist restart", recovery.Detail{Cause: err})
	}

	if m.analytics != nil {
		m.analytics.Emit(userID, m.firstStep(), EventStarted, EventDetail{})
	}
	return p, nil
}

// MarkActionCompleted records a completed sub-action inside the current
// step's data map. Re-marking is a no-op.
func (m *Manager) MarkActionCompleted(ctx context.Context, userID string, action Action) error {
	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return m.errs.NewError(recovery.CodeDatabaseError,
			"could not load progress", recovery.Detail{Action: string(action), Cause: err})
	}
	if p == nil {
		return m.errs.NewError(recovery.CodeInvalidState,
			"no progress record", recovery.Detail{Action: string(action)})
	}

	if !markAction(p, Step(p.CurrentStep), action) {
		return nil
	}
	p.LastSeenAt = time.Now()

	if err := m.repo.Upsert(ctx, p); err != nil {
		return m.errs.NewError(recovery.CodeDatabaseError,
			"could not persist action", recovery.Detail{Action: string(action), Cause: err})
	}
	return nil
}

// IsActionCompleted reports whether the named action fired within the
// current step.
func (m *Manager) IsActionCompleted(ctx context.Context, userID string, action Action) (bool, error) {
	p, err := m.repo.Get(ctx, userID)
	if err != nil || p == nil {
		return false, err
	}
	return actionDone(p, Step(p.CurrentStep), action), nil
}

// CheckStepActionCompletion derives whether the active step requires an
// action and whether it has been satisfied. Non-interactive steps are
// always satisfied.
func (m *Manager) CheckStepActionCompletion(ctx context.Context, userID string) (required, satisfied bool, err error) {
	p, err := m.repo.Get(ctx, userID)
	if err != nil || p == nil {
		return false, false, err
	}

	sc, ok := m.StepConfigFor(Step(p.CurrentStep))
	if !ok || !sc.Interactive() {
		return false, true, nil
	}
	return true, actionDone(p, sc.ID, sc.Action), nil
}

// ResumeTutorial broadcasts the resume signal so the presentation layer
// re-displays the overlay after an out-of-band action completion.
func (m *Manager) ResumeTutorial(userID string) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(bus.Signal{
		Name: SignalResume,
		Data: map[string]string{"user_id": userID},
	})
}

// BeginStep emits the started event for the current step and, for
// interactive steps, arms action detection. Detection completion marks
// the action and broadcasts resume; detection failure is routed through
// the error handler and surfaces the step-blocked signal.
func (m *Manager) BeginStep(ctx context.Context, userID string) error {
	p, err := m.repo.Get(ctx, userID)
	if err != nil {
		return m.errs.NewError(recovery.CodeDatabaseError,
			"could not load progress", recovery.Detail{Cause: err})
	}
	if p == nil {
		return m.errs.NewError(recovery.CodeInvalidState, "no progress record", recovery.Detail{})
	}
	if terminal(p) {
		return nil
	}

	sc, ok := m.StepConfigFor(Step(p.CurrentStep))
	if !ok {
		// The resolved sequence changed under a persisted record (e.g. a
		// variant removed the step). Reset to the last known-good step.
		e := m.errs.NewError(recovery.CodeInvalidState,
			"persisted step missing from sequence", recovery.Detail{Step: p.CurrentStep})
		if res := m.errs.Handle(e); res.Recovery == recovery.ActionResetStep {
			return m.resetToKnownGood(ctx, p)
		}
		return e
	}

	if m.analytics != nil {
		m.analytics.Emit(userID, sc.ID, EventStarted, EventDetail{})
	}

	if !sc.Interactive() || m.watcher == nil {
		return nil
	}

	cfg := *sc.Detection
	if cfg.Timeout <= 0 {
		cfg.Timeout = m.cfg.DetectionTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = m.cfg.DetectionRetries
	}

	return m.watcher.WatchAction(sc.Action, cfg,
		func(a Action) {
			cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.MarkActionCompleted(cctx, userID, a); err != nil {
				m.logger.Warn("mark action failed", zap.Error(err))
			}
			m.ResumeTutorial(userID)
		},
		func(err error) {
			m.handleDetectionFailure(context.Background(), userID, sc, err)
		},
		func(attempt int) {
			if m.analytics != nil {
				m.analytics.Emit(userID, sc.ID, EventRetry, EventDetail{Attempt: attempt})
			}
		},
	)
}

// resetToKnownGood moves progress to the first sequence step the user has
// not completed yet.
func (m *Manager) resetToKnownGood(ctx context.Context, p *store.Progress) error {
	target := m.firstStep()
	for _, sc := range m.steps {
		done := false
		for _, c := range p.CompletedSteps {
			if c == string(sc.ID) {
				done = true
				break
			}
		}
		if !done {
			target = sc.ID
			break
		}
	}

	p.CurrentStep = string(target)
	p.LastSeenAt = time.Now()
	if err := m.repo.Upsert(ctx, p); err != nil {
		return m.errs.NewError(recovery.CodeDatabaseError,
			"could not persist step reset", recovery.Detail{Step: string(target), Cause: err})
	}
	return nil
}

// handleDetectionFailure records the failure, bumps the error counter and
// lets the presentation layer offer a way forward. The user is never left
// blocked: skippable steps surface the skip path via SignalStepBlocked.
func (m *Manager) handleDetectionFailure(ctx context.Context, userID string, sc StepConfig, err error) {
	var e *recovery.Error
	if !errors.As(err, &e) {
		e = m.errs.NewError(recovery.CodeStepValidationFailed, err.Error(),
			recovery.Detail{Step: string(sc.ID), Action: string(sc.Action), Cause: err})
	}
	res := m.errs.Handle(e)

	if m.analytics != nil {
		kind := EventError
		if e.Code == recovery.CodeActionTimeout {
			kind = EventTimeout
		}
		m.analytics.Emit(userID, sc.ID, kind, EventDetail{ErrorCode: string(e.Code)})
	}

	if p, gerr := m.repo.Get(ctx, userID); gerr == nil && p != nil {
		p.ErrorCount++
		if uerr := m.repo.Upsert(ctx, p); uerr != nil {
			m.logger.Warn("error counter not persisted", zap.Error(uerr))
		}
	}

	if m.bus != nil && res.Recovery == recovery.ActionOfferSkip {
		m.bus.Publish(bus.Signal{
			Name: SignalStepBlocked,
			Data: map[string]string{
				"user_id": userID,
				"step":    string(sc.ID),
				"message": res.UserMessage,
			},
		})
	}
}

// EndSession tears down detection and flushes pending analytics.
func (m *Manager) EndSession(ctx context.Context) {
	if m.watcher != nil {
		m.watcher.Cleanup()
	}
	if m.analytics != nil {
		m.analytics.Flush(ctx)
	}
}
