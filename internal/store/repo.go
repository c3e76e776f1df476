package store

import (
	"context"
	"time"
)

// Progress is the durable onboarding aggregate, one per user. The tour
// manager is the only writer; other components treat it as read-only.
type Progress struct {
	ID             int
	UserID         string
	CurrentStep    string
	CompletedSteps []string
	IsCompleted    bool
	IsSkipped      bool
	StepData       map[string][]string
	StartedAt      time.Time
	LastSeenAt     time.Time
	CompletedAt    *time.Time
	ErrorCount     int
}

// ProgressRepo persists per-user onboarding progress.
type ProgressRepo interface {
	// Get returns the user's progress, or nil if none exists.
	Get(ctx context.Context, userID string) (*Progress, error)

	// Upsert writes the whole progress record (last write wins).
	Upsert(ctx context.Context, p *Progress) error
}

// TourEventData is one analytics event awaiting persistence.
type TourEventData struct {
	EventID          string
	UserID           string
	Step             string
	Action           string
	DurationMs       int64
	InteractionCount int
	Metadata         map[string]string
}

// EventRepo provides append and aggregate access to tour analytics events.
type EventRepo interface {
	// AppendTourEvents persists a batch of analytics events.
	AppendTourEvents(ctx context.Context, batch []TourEventData) error

	// ActionCounts returns the number of recorded events per action kind.
	ActionCounts(ctx context.Context) (map[string]int, error)

	// StepCounts returns the number of recorded events per step.
	StepCounts(ctx context.Context) (map[string]int, error)
}

// Reward is a badge granted for completing an onboarding step.
type Reward struct {
	RewardID    string
	Step        string
	Name        string
	Description string
	Icon        string
	Points      int
}

// RewardRepo provides access to step rewards.
type RewardRepo interface {
	// ActiveForStep returns the active rewards granted by completing step.
	ActiveForStep(ctx context.Context, step string) ([]Reward, error)

	// Seed inserts rewards that don't exist yet. Existing rows are untouched.
	Seed(ctx context.Context, rewards []Reward) error
}
