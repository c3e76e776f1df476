package store

import (
	"context"
	"fmt"

	"github.com/studyloop/studyloop/ent"
	"github.com/studyloop/studyloop/ent/tourevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTourEvents(ctx context.Context, batch []TourEventData) error {
	for _, data := range batch {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		builder := r.client.TourEvent.Create().
			SetSequence(seqNum).
			SetEventID(data.EventID).
			SetUserID(data.UserID).
			SetStep(data.Step).
			SetAction(data.Action).
			SetDurationMs(data.DurationMs).
			SetInteractionCount(data.InteractionCount)

		if len(data.Metadata) > 0 {
			builder = builder.SetMetadata(data.Metadata)
		}

		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("save tour event: %w", err)
		}
	}
	return nil
}

func (r *eventRepo) ActionCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Action string `json:"action"`
		Count  int    `json:"count"`
	}
	err := r.client.TourEvent.Query().
		GroupBy(tourevent.FieldAction).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group by action: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Action] = row.Count
	}
	return counts, nil
}

func (r *eventRepo) StepCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Step  string `json:"step"`
		Count int    `json:"count"`
	}
	err := r.client.TourEvent.Query().
		GroupBy(tourevent.FieldStep).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group by step: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Step] = row.Count
	}
	return counts, nil
}
