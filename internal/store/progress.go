package store

import (
	"context"
	"fmt"

	"github.com/studyloop/studyloop/ent"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*Progress, error) {
	tp, err := r.client.TourProgress.Query().
		Where(tourprogress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(tp), nil
}

func (r *progressRepo) Upsert(ctx context.Context, p *Progress) error {
	existing, err := r.client.TourProgress.Query().
		Where(tourprogress.UserID(p.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress for upsert: %w", err)
	}

	if existing == nil {
		builder := r.client.TourProgress.Create().
			SetUserID(p.UserID).
			SetCurrentStep(p.CurrentStep).
			SetCompletedSteps(p.CompletedSteps).
			SetIsCompleted(p.IsCompleted).
			SetIsSkipped(p.IsSkipped).
			SetStepData(p.StepData).
			SetStartedAt(p.StartedAt).
			SetLastSeenAt(p.LastSeenAt).
			SetErrorCount(p.ErrorCount)
		if p.CompletedAt != nil {
			builder = builder.SetCompletedAt(*p.CompletedAt)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		p.ID = created.ID
		return nil
	}

	builder := existing.Update().
		SetCurrentStep(p.CurrentStep).
		SetCompletedSteps(p.CompletedSteps).
		SetIsCompleted(p.IsCompleted).
		SetIsSkipped(p.IsSkipped).
		SetStepData(p.StepData).
		SetStartedAt(p.StartedAt).
		SetLastSeenAt(p.LastSeenAt).
		SetErrorCount(p.ErrorCount)
	if p.CompletedAt != nil {
		builder = builder.SetCompletedAt(*p.CompletedAt)
	} else {
		builder = builder.ClearCompletedAt()
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	p.ID = updated.ID
	return nil
}

// entProgressToProgress converts an ent TourProgress to a store Progress.
func entProgressToProgress(tp *ent.TourProgress) *Progress {
	p := &Progress{
		ID:             tp.ID,
		UserID:         tp.UserID,
		CurrentStep:    tp.CurrentStep,
		CompletedSteps: tp.CompletedSteps,
		IsCompleted:    tp.IsCompleted,
		IsSkipped:      tp.IsSkipped,
		StepData:       tp.StepData,
		StartedAt:      tp.StartedAt,
		LastSeenAt:     tp.LastSeenAt,
		CompletedAt:    tp.CompletedAt,
		ErrorCount:     tp.ErrorCount,
	}
	if p.StepData == nil {
		p.StepData = make(map[string][]string)
	}
	return p
}
