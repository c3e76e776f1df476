package tour

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/store"
)

type fakeEventRepo struct {
	mu      sync.Mutex
	batches [][]store.TourEventData
	failN   int // fail the next N appends
}

func (f *fakeEventRepo) AppendTourEvents(_ context.Context, events []store.TourEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failN > 0 {
		f.failN--
		return errors.New("insert failed")
	}
	cp := append([]store.TourEventData(nil), events...)
	f.batches = append(f.batches, cp)
	return nil
}

func (f *fakeEventRepo) ActionCounts(context.Context) (map[string]int, error) { return nil, nil }
func (f *fakeEventRepo) StepCounts(context.Context) (map[string]int, error)   { return nil, nil }

func (f *fakeEventRepo) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

func newTestAnalytics(repo store.EventRepo, batchSize int) *Analytics {
	cfg := DefaultConfig()
	cfg.AnalyticsBatchSize = batchSize
	cfg.AnalyticsFlushInterval = time.Hour // interval flushes off in these tests
	return NewAnalytics(repo, cfg, nil)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never satisfied")
}

func TestAnalyticsFlushesOnBatchSize(t *testing.T) {
	repo := &fakeEventRepo{}
	a := newTestAnalytics(repo, 3)
	defer a.Close()

	for range 3 {
		a.Emit("u1", StepWelcome, EventStarted, EventDetail{})
	}

	waitFor(t, func() bool { return repo.total() == 3 })
}

func TestAnalyticsCloseFlushesRemainder(t *testing.T) {
	repo := &fakeEventRepo{}
	a := newTestAnalytics(repo, 100)

	a.Emit("u1", StepWelcome, EventCompleted, EventDetail{Duration: 1200 * time.Millisecond})
	a.Emit("u1", StepNavigation, EventSkipped, EventDetail{})
	a.Close()

	if got := repo.total(); got != 2 {
		t.Fatalf("persisted events = %d, want 2", got)
	}

	ev := repo.batches[0][0]
	if ev.EventID == "" {
		t.Error("event_id not assigned")
	}
	if ev.DurationMs != 1200 {
		t.Errorf("duration_ms = %d, want 1200", ev.DurationMs)
	}
}

func TestAnalyticsMetadataCarriesErrorCode(t *testing.T) {
	repo := &fakeEventRepo{}
	a := newTestAnalytics(repo, 100)

	a.Emit("u1", StepTaskCreation, EventTimeout, EventDetail{ErrorCode: "action_timeout", Attempt: 2})
	a.Close()

	if repo.total() != 1 {
		t.Fatalf("persisted events = %d, want 1", repo.total())
	}
	meta := repo.batches[0][0].Metadata
	if meta["error_code"] != "action_timeout" {
		t.Errorf("error_code = %q", meta["error_code"])
	}
	if meta["attempt"] != "2" {
		t.Errorf("attempt = %q", meta["attempt"])
	}
}

func TestAnalyticsRetriesOnceThenSucceeds(t *testing.T) {
	repo := &fakeEventRepo{failN: 1}
	a := newTestAnalytics(repo, 100)

	a.Emit("u1", StepWelcome, EventStarted, EventDetail{})
	a.Close()

	if repo.total() != 1 {
		t.Fatalf("persisted events = %d, want 1 after retry", repo.total())
	}
}

func TestAnalyticsDropsBatchAfterRetries(t *testing.T) {
	repo := &fakeEventRepo{failN: 10}
	a := newTestAnalytics(repo, 100)

	a.Emit("u1", StepWelcome, EventStarted, EventDetail{})
	a.Close()

	if repo.total() != 0 {
		t.Fatalf("persisted events = %d, want 0 (batch dropped)", repo.total())
	}

	// A later emit starts a fresh buffer; the dropped batch stays dropped.
	repo.mu.Lock()
	repo.failN = 0
	repo.mu.Unlock()
}

func TestAnalyticsNilRepoIsNoop(t *testing.T) {
	a := newTestAnalytics(nil, 1)
	a.Emit("u1", StepWelcome, EventStarted, EventDetail{})
	a.Close()
}

func TestAnalyticsCloseTwiceIsSafe(t *testing.T) {
	repo := &fakeEventRepo{}
	a := newTestAnalytics(repo, 100)
	a.Close()
	a.Close()
}
