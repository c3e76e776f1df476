package tour

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/recovery"
	"github.com/studyloop/studyloop/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepo with failure injection.
type fakeProgressRepo struct {
	mu       sync.Mutex
	records  map[string]*store.Progress
	getErrs  int // fail the next N Get calls
	failPut  bool
	getCalls int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*store.Progress)}
}

func (f *fakeProgressRepo) Get(_ context.Context, userID string) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErrs > 0 {
		f.getErrs--
		return nil, errors.New("store unavailable")
	}
	p, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.CompletedSteps = append([]string(nil), p.CompletedSteps...)
	cp.StepData = make(map[string][]string, len(p.StepData))
	for k, v := range p.StepData {
		cp.StepData[k] = append([]string(nil), v...)
	}
	return &cp, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, p *store.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut {
		return errors.New("write failed")
	}
	cp := *p
	f.records[p.UserID] = &cp
	return nil
}

func testSteps() []StepConfig {
	return []StepConfig{
		{ID: StepWelcome, Title: "Welcome", AutoAdvance: true, Duration: 3 * time.Second, TargetTab: -1, Skippable: true},
		{ID: StepNavigation, Title: "Find your way", TargetTab: 0, Skippable: true,
			Action: ActionChangeTab,
			Detection: &DetectionConfig{
				PrimarySelectors: []string{"tabs"},
				EventKinds:       []string{"click"},
				Signal:           SignalTabChanged,
			}},
		{ID: StepTaskCreation, Title: "Your first task", TargetTab: 1, Skippable: true,
			Action: ActionCreateTask,
			Detection: &DetectionConfig{
				PrimarySelectors:  []string{"tasks.form"},
				FallbackSelectors: []string{"tasks.list"},
				EventKinds:        []string{"submit"},
				Signal:            SignalTaskCreated,
			}},
		{ID: StepAchievements, Title: "Trophies", TargetTab: 4, Skippable: true, AutoAdvance: true},
		{ID: StepCompletion, Title: "All set!", TargetTab: -1},
	}
}

func newTestManager(repo store.ProgressRepo) *Manager {
	cfg := DefaultConfig()
	cfg.FetchBackoffInitial = time.Millisecond
	cfg.FetchBackoffMax = 2 * time.Millisecond
	return NewManager(testSteps(), cfg, Deps{Progress: repo})
}

func TestInitializeCreatesAtFirstStep(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	p, err := m.Initialize(ctx, "u1")
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if p.CurrentStep != string(StepWelcome) {
		t.Errorf("current_step = %q, want welcome", p.CurrentStep)
	}
	if len(p.CompletedSteps) != 0 {
		t.Errorf("completed_steps = %v, want empty", p.CompletedSteps)
	}

	// Second initialize returns the existing record untouched.
	if _, err := m.Advance(ctx, "u1", StepWelcome); err != nil {
		t.Fatalf("advance: %v", err)
	}
	p, err = m.Initialize(ctx, "u1")
	if err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	if p.CurrentStep != string(StepNavigation) {
		t.Errorf("re-initialize reset progress: current = %q", p.CurrentStep)
	}
}

func TestInitializeStoreDownIsInitializationFailed(t *testing.T) {
	repo := newFakeProgressRepo()
	repo.getErrs = 10
	m := newTestManager(repo)

	_, err := m.Initialize(context.Background(), "u1")
	var re *recovery.Error
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *recovery.Error", err)
	}
	if re.Code != recovery.CodeInitializationFailed {
		t.Errorf("code = %s, want initialization_failed", re.Code)
	}
	if !re.Retryable {
		t.Error("initialization failure must be retryable")
	}
}

func TestAdvanceMovesToSuccessor(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Initialize(ctx, "u1"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := m.Advance(ctx, "u1", StepWelcome)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if p.CurrentStep != string(StepNavigation) {
		t.Errorf("current_step = %q, want navigation", p.CurrentStep)
	}
	if len(p.CompletedSteps) != 1 || p.CompletedSteps[0] != "welcome" {
		t.Errorf("completed_steps = %v, want [welcome]", p.CompletedSteps)
	}
}

func TestAdvanceIsIdempotentOnCompletedList(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	if _, err := m.Advance(ctx, "u1", StepWelcome); err != nil {
		t.Fatalf("first advance: %v", err)
	}
	p, err := m.Advance(ctx, "u1", StepWelcome)
	if err != nil {
		t.Fatalf("second advance: %v", err)
	}

	count := 0
	for _, s := range p.CompletedSteps {
		if s == "welcome" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("welcome appears %d times in completed_steps, want 1", count)
	}
}

func TestAdvanceLastContentStepCompletes(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	for _, s := range []Step{StepWelcome, StepNavigation, StepTaskCreation} {
		if _, err := m.Advance(ctx, "u1", s); err != nil {
			t.Fatalf("advance %s: %v", s, err)
		}
	}

	p, err := m.Advance(ctx, "u1", StepAchievements)
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if p.CurrentStep != string(StepCompletion) {
		t.Errorf("current_step = %q, want completion", p.CurrentStep)
	}
	if !p.IsCompleted {
		t.Error("is_completed not set")
	}
	if p.CompletedAt == nil {
		t.Error("completed_at not set")
	}
}

func TestAdvanceUnrecognizedStepIsInvalidState(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	_, err := m.Advance(ctx, "u1", Step("time_travel"))
	var re *recovery.Error
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *recovery.Error", err)
	}
	if re.Code != recovery.CodeInvalidState {
		t.Errorf("code = %s, want invalid_state", re.Code)
	}
	if re.Retryable {
		t.Error("invalid state must not be retryable")
	}
}

func TestAdvanceWithoutProgressIsInvalidState(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)

	_, err := m.Advance(context.Background(), "ghost", StepWelcome)
	var re *recovery.Error
	if !errors.As(err, &re) || re.Code != recovery.CodeInvalidState {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestAdvancePersistFailureIsDatabaseError(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	repo.failPut = true

	_, err := m.Advance(ctx, "u1", StepWelcome)
	var re *recovery.Error
	if !errors.As(err, &re) || re.Code != recovery.CodeDatabaseError {
		t.Fatalf("err = %v, want database_error", err)
	}
	if !re.Retryable {
		t.Error("database errors must be retryable")
	}
}

func TestSkipTutorialTerminalAndIdempotent(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome)

	p, err := m.SkipTutorial(ctx, "u1")
	if err != nil {
		t.Fatalf("skip tutorial: %v", err)
	}
	if !p.IsCompleted || !p.IsSkipped {
		t.Error("both flags must be set")
	}

	again, err := m.SkipTutorial(ctx, "u1")
	if err != nil {
		t.Fatalf("second skip: %v", err)
	}
	if !again.IsCompleted || !again.IsSkipped {
		t.Error("flags must remain set")
	}

	// No transitions after terminal except restart.
	after, err := m.Advance(ctx, "u1", StepNavigation)
	if err != nil {
		t.Fatalf("advance after skip: %v", err)
	}
	if after.CurrentStep != p.CurrentStep {
		t.Errorf("terminal state moved: %q -> %q", p.CurrentStep, after.CurrentStep)
	}
}

func TestRestartFromTerminal(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	m.SkipTutorial(ctx, "u1")

	p, err := m.Restart(ctx, "u1")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if p.CurrentStep != string(StepWelcome) {
		t.Errorf("current_step = %q, want welcome", p.CurrentStep)
	}
	if len(p.CompletedSteps) != 0 {
		t.Errorf("completed_steps = %v, want empty", p.CompletedSteps)
	}
	if p.IsCompleted || p.IsSkipped {
		t.Error("flags must be cleared")
	}
	if p.CompletedAt != nil {
		t.Error("completed_at must be cleared")
	}
}

func TestProgressRetriesThenReturnsNil(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	repo.mu.Lock()
	repo.getErrs = 100 // more than the attempt ceiling
	calls := repo.getCalls
	repo.mu.Unlock()

	p, err := m.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("progress must not hard-fail: %v", err)
	}
	if p != nil {
		t.Error("expected nil progress after exhausted retries")
	}

	repo.mu.Lock()
	attempts := repo.getCalls - calls
	repo.mu.Unlock()
	if attempts != m.cfg.FetchAttempts {
		t.Errorf("attempts = %d, want %d", attempts, m.cfg.FetchAttempts)
	}
}

func TestProgressRecoversWithinRetryBudget(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	repo.mu.Lock()
	repo.getErrs = 2 // third attempt succeeds
	repo.mu.Unlock()

	p, err := m.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p == nil {
		t.Fatal("expected progress after transient failures")
	}
}

func TestMarkActionCompletedIdempotent(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome) // now on navigation

	if err := m.MarkActionCompleted(ctx, "u1", ActionChangeTab); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := m.MarkActionCompleted(ctx, "u1", ActionChangeTab); err != nil {
		t.Fatalf("re-mark: %v", err)
	}

	done, err := m.IsActionCompleted(ctx, "u1", ActionChangeTab)
	if err != nil {
		t.Fatalf("is completed: %v", err)
	}
	if !done {
		t.Error("action should be recorded")
	}

	p, _ := repo.Get(ctx, "u1")
	if got := p.StepData["navigation"]; len(got) != 1 {
		t.Errorf("step data = %v, want single entry", got)
	}
}

func TestCheckStepActionCompletion(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")

	// welcome is passive.
	required, satisfied, err := m.CheckStepActionCompletion(ctx, "u1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if required || !satisfied {
		t.Errorf("welcome: required=%v satisfied=%v, want false/true", required, satisfied)
	}

	m.Advance(ctx, "u1", StepWelcome) // navigation, interactive
	required, satisfied, _ = m.CheckStepActionCompletion(ctx, "u1")
	if !required || satisfied {
		t.Errorf("navigation before action: required=%v satisfied=%v, want true/false", required, satisfied)
	}

	m.MarkActionCompleted(ctx, "u1", ActionChangeTab)
	required, satisfied, _ = m.CheckStepActionCompletion(ctx, "u1")
	if !required || !satisfied {
		t.Errorf("navigation after action: required=%v satisfied=%v, want true/true", required, satisfied)
	}
}

func TestResumeBroadcast(t *testing.T) {
	repo := newFakeProgressRepo()
	b := bus.New()
	cfg := DefaultConfig()
	m := NewManager(testSteps(), cfg, Deps{Progress: repo, Bus: b})

	var got []string
	b.Subscribe(SignalResume, func(s bus.Signal) {
		got = append(got, s.Data["user_id"])
	})

	m.ResumeTutorial("u1")
	if len(got) != 1 || got[0] != "u1" {
		t.Errorf("resume signals = %v, want [u1]", got)
	}
}

// fakeWatcher records watch requests and lets tests drive outcomes.
type fakeWatcher struct {
	mu       sync.Mutex
	requests []Action
	complete func(Action)
	fail     func(error)
	retry    func(int)
	cleaned  int
}

func (w *fakeWatcher) WatchAction(a Action, _ DetectionConfig, onComplete func(Action), onFail func(error), onRetry func(int)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.requests = append(w.requests, a)
	w.complete = onComplete
	w.fail = onFail
	w.retry = onRetry
	return nil
}

func (w *fakeWatcher) Cleanup() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cleaned++
}

func TestBeginStepArmsDetectionAndCompletionResumes(t *testing.T) {
	repo := newFakeProgressRepo()
	b := bus.New()
	w := &fakeWatcher{}
	cfg := DefaultConfig()
	m := NewManager(testSteps(), cfg, Deps{Progress: repo, Bus: b, Watcher: w})
	ctx := context.Background()

	resumed := make(chan struct{}, 1)
	b.Subscribe(SignalResume, func(bus.Signal) { resumed <- struct{}{} })

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome) // navigation, interactive

	if err := m.BeginStep(ctx, "u1"); err != nil {
		t.Fatalf("begin step: %v", err)
	}
	w.mu.Lock()
	if len(w.requests) != 1 || w.requests[0] != ActionChangeTab {
		t.Fatalf("watch requests = %v, want [change_tab]", w.requests)
	}
	complete := w.complete
	w.mu.Unlock()

	complete(ActionChangeTab)

	select {
	case <-resumed:
	case <-time.After(2 * time.Second):
		t.Fatal("resume signal never fired")
	}

	done, _ := m.IsActionCompleted(ctx, "u1", ActionChangeTab)
	if !done {
		t.Error("action not marked after detection completion")
	}
}

func TestDetectionFailureOffersSkip(t *testing.T) {
	repo := newFakeProgressRepo()
	b := bus.New()
	w := &fakeWatcher{}
	errs := recovery.NewHandler(nil, nil)
	m := NewManager(testSteps(), DefaultConfig(), Deps{Progress: repo, Bus: b, Watcher: w, Errors: errs})
	ctx := context.Background()

	var blocked []string
	b.Subscribe(SignalStepBlocked, func(s bus.Signal) {
		blocked = append(blocked, s.Data["step"])
	})

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome)
	m.BeginStep(ctx, "u1")

	w.mu.Lock()
	fail := w.fail
	w.mu.Unlock()
	fail(errs.NewError(recovery.CodeActionTimeout, "gave up", recovery.Detail{Step: "navigation"}))

	if len(blocked) != 1 || blocked[0] != "navigation" {
		t.Errorf("blocked signals = %v, want [navigation]", blocked)
	}

	p, _ := repo.Get(ctx, "u1")
	if p.ErrorCount != 1 {
		t.Errorf("error_count = %d, want 1", p.ErrorCount)
	}

	// A successful transition resets the counter.
	p2, err := m.Advance(ctx, "u1", StepNavigation)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if p2.ErrorCount != 0 {
		t.Errorf("error_count after advance = %d, want 0", p2.ErrorCount)
	}
}

func TestDetectionRetryEmitsAnalytics(t *testing.T) {
	repo := newFakeProgressRepo()
	events := &fakeEventRepo{}
	a := newTestAnalytics(events, 100)
	w := &fakeWatcher{}
	m := NewManager(testSteps(), DefaultConfig(), Deps{Progress: repo, Watcher: w, Analytics: a})
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome) // navigation, interactive
	m.BeginStep(ctx, "u1")

	w.mu.Lock()
	retry := w.retry
	w.mu.Unlock()
	if retry == nil {
		t.Fatal("no retry hook armed")
	}

	retry(1)
	retry(2)
	a.Close()

	var retries []store.TourEventData
	for _, batch := range events.batches {
		for _, ev := range batch {
			if ev.Action == string(EventRetry) {
				retries = append(retries, ev)
			}
		}
	}
	if len(retries) != 2 {
		t.Fatalf("retry events = %d, want 2", len(retries))
	}
	if retries[0].Step != string(StepNavigation) {
		t.Errorf("retry step = %q, want navigation", retries[0].Step)
	}
	if retries[0].Metadata["attempt"] != "1" || retries[1].Metadata["attempt"] != "2" {
		t.Errorf("attempts = %q, %q, want 1, 2",
			retries[0].Metadata["attempt"], retries[1].Metadata["attempt"])
	}
}

func TestBeginStepResetsUnknownPersistedStep(t *testing.T) {
	repo := newFakeProgressRepo()
	m := newTestManager(repo)
	ctx := context.Background()

	m.Initialize(ctx, "u1")
	m.Advance(ctx, "u1", StepWelcome)

	// Simulate a variant change that removed the persisted step.
	repo.mu.Lock()
	repo.records["u1"].CurrentStep = "retired_step"
	repo.mu.Unlock()

	if err := m.BeginStep(ctx, "u1"); err != nil {
		t.Fatalf("begin step: %v", err)
	}

	p, _ := repo.Get(ctx, "u1")
	if p.CurrentStep != string(StepNavigation) {
		t.Errorf("current_step = %q, want first incomplete step navigation", p.CurrentStep)
	}
}
