package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TourProgress is the durable onboarding aggregate, one row per user.
// It is mutated only by the tour manager; everything else reads it.
type TourProgress struct {
	ent.Schema
}

func (TourProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Owning user"),
		field.String("current_step").
			NotEmpty().
			Comment("Step the user is currently on"),
		field.JSON("completed_steps", []string{}).
			Optional().
			Comment("Ordered completed step ids, no duplicates"),
		field.Bool("is_completed").
			Default(false),
		field.Bool("is_skipped").
			Default(false),
		field.JSON("step_data", map[string][]string{}).
			Optional().
			Comment("Per-step list of completed sub-action names"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("error_count").
			Default(0).
			Comment("Errors seen since the last successful transition"),
	}
}

func (TourProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
