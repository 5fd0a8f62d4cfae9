package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord tracks one learner's status on one skill. At most one
// row exists per (user, skill); the unique index is what makes the
// upsert in the store race-free.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("not_started, in_progress, or completed"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set only while status is completed"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id"),
	}
}
