package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reward is a badge granted for completing an onboarding step.
type Reward struct {
	ent.Schema
}

func (Reward) Fields() []ent.Field {
	return []ent.Field{
		field.String("reward_id").
			NotEmpty().
			Unique(),
		field.String("step").
			NotEmpty().
			Comment("Step whose completion grants this reward"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.String("icon").
			Default(""),
		field.Int("points").
			Default(0),
		field.Bool("active").
			Default(true).
			Comment("Inactive rewards are kept for history but never granted"),
	}
}

func (Reward) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step"),
		index.Fields("active"),
	}
}
