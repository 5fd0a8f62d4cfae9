package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// LogMixin provides the base fields shared by the append-only log
// entities (study sessions, quiz attempts). Log rows are written once
// and never mutated or deleted.
type LogMixin struct {
	mixin.Schema
}

func (LogMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the row was appended"),
	}
}

func (LogMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "skill_id"),
	}
}
