package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuizAttempt records one graded quiz submission, pass or fail.
// Every grading event is appended regardless of whether it changed
// progress status.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{LogMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("score").
			Min(0).
			Max(100).
			Immutable(),
		field.Bool("passed").
			Immutable(),
	}
}
