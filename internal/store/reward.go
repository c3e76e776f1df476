package store

import (
	"context"
	"fmt"

	"github.com/studyloop/studyloop/ent"
	"github.com/studyloop/studyloop/ent/reward"
)

// rewardRepo implements RewardRepo using the ent client.
type rewardRepo struct {
	client *ent.Client
}

func (r *rewardRepo) ActiveForStep(ctx context.Context, step string) ([]Reward, error) {
	rows, err := r.client.Reward.Query().
		Where(reward.Step(step), reward.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query rewards for step %s: %w", step, err)
	}

	rewards := make([]Reward, 0, len(rows))
	for _, row := range rows {
		rewards = append(rewards, Reward{
			RewardID:    row.RewardID,
			Step:        row.Step,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			Points:      row.Points,
		})
	}
	return rewards, nil
}

func (r *rewardRepo) Seed(ctx context.Context, rewards []Reward) error {
	for _, rw := range rewards {
		exists, err := r.client.Reward.Query().
			Where(reward.RewardID(rw.RewardID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check reward %s: %w", rw.RewardID, err)
		}
		if exists {
			continue
		}

		_, err = r.client.Reward.Create().
			SetRewardID(rw.RewardID).
			SetStep(rw.Step).
			SetName(rw.Name).
			SetDescription(rw.Description).
			SetIcon(rw.Icon).
			SetPoints(rw.Points).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed reward %s: %w", rw.RewardID, err)
		}
	}
	return nil
}
