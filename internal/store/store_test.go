package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress for unknown user")
	}
}

func TestProgressUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := &Progress{
		UserID:         "u1",
		CurrentStep:    "welcome",
		CompletedSteps: []string{},
		StepData:       map[string][]string{},
		StartedAt:      now,
		LastSeenAt:     now,
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	p.CurrentStep = "navigation"
	p.CompletedSteps = []string{"welcome"}
	p.StepData["navigation"] = []string{"tab_changed"}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected progress record")
	}
	if got.CurrentStep != "navigation" {
		t.Errorf("current_step = %q, want navigation", got.CurrentStep)
	}
	if len(got.CompletedSteps) != 1 || got.CompletedSteps[0] != "welcome" {
		t.Errorf("completed_steps = %v, want [welcome]", got.CompletedSteps)
	}
	if got.CompletedAt != nil {
		t.Error("completed_at should be nil before completion")
	}

	// Only one row per user regardless of upsert count.
	count, err := s.Client().TourProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestProgressCompletedAtClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	done := now.Add(time.Minute)
	p := &Progress{
		UserID:      "u1",
		CurrentStep: "completion",
		IsCompleted: true,
		StartedAt:   now,
		LastSeenAt:  now,
		CompletedAt: &done,
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Restart clears the completion timestamp.
	p.IsCompleted = false
	p.CurrentStep = "welcome"
	p.CompletedAt = nil
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (restart): %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompletedAt != nil {
		t.Errorf("completed_at = %v, want nil after restart", got.CompletedAt)
	}
}

func TestAppendTourEventsAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	batch := []TourEventData{
		{EventID: "e1", UserID: "u1", Step: "welcome", Action: "started"},
		{EventID: "e2", UserID: "u1", Step: "welcome", Action: "completed", DurationMs: 3000},
		{EventID: "e3", UserID: "u1", Step: "navigation", Action: "started"},
		{EventID: "e4", UserID: "u1", Step: "navigation", Action: "timeout", Metadata: map[string]string{"attempt": "1"}},
	}
	if err := repo.AppendTourEvents(ctx, batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	actions, err := repo.ActionCounts(ctx)
	if err != nil {
		t.Fatalf("action counts: %v", err)
	}
	if actions["started"] != 2 {
		t.Errorf("started count = %d, want 2", actions["started"])
	}
	if actions["timeout"] != 1 {
		t.Errorf("timeout count = %d, want 1", actions["timeout"])
	}

	steps, err := repo.StepCounts(ctx)
	if err != nil {
		t.Fatalf("step counts: %v", err)
	}
	if steps["welcome"] != 2 || steps["navigation"] != 2 {
		t.Errorf("step counts = %v, want welcome:2 navigation:2", steps)
	}
}

func TestEventSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.EventRepo(); err != nil {
		t.Fatalf("event repo: %v", err)
	}

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	ctx := context.Background()
	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not monotonic after %d", seq, prev)
		}
		prev = seq
	}
}

func TestRewardSeedAndFetch(t *testing.T) {
	s := openTestStore(t)
	repo := s.RewardRepo()
	ctx := context.Background()

	seed := []Reward{
		{RewardID: "first-task", Step: "task_creation", Name: "First Task", Points: 10},
		{RewardID: "tour-done", Step: "completion", Name: "Tour Complete", Points: 50},
	}
	if err := repo.Seed(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding twice must not duplicate.
	if err := repo.Seed(ctx, seed); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	got, err := repo.ActiveForStep(ctx, "task_creation")
	if err != nil {
		t.Fatalf("active for step: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rewards = %d, want 1", len(got))
	}
	if got[0].Name != "First Task" || got[0].Points != 10 {
		t.Errorf("reward = %+v, want First Task / 10 points", got[0])
	}

	none, err := repo.ActiveForStep(ctx, "welcome")
	if err != nil {
		t.Fatalf("active for step (none): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("rewards for welcome = %d, want 0", len(none))
	}
}
