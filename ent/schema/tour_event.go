package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TourEvent records onboarding analytics (started/completed/skipped/error/
// retry/timeout). Events are best-effort: a lost batch is tolerable.
type TourEvent struct {
	ent.Schema
}

func (TourEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TourEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at emission time"),
		field.String("user_id").
			NotEmpty(),
		field.String("step").
			NotEmpty().
			Comment("Step the event relates to"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, skipped, error, retry or timeout"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Time spent on the step, where applicable"),
		field.Int("interaction_count").
			Default(0),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Action-kind specific fields (error code, retry attempt, ...)"),
	}
}

func (TourEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("step"),
		index.Fields("action"),
	}
}
