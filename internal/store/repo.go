package store

import (
	"context"
	"time"
)

// ProgressRow is the persisted form of one (user, skill) progress
// record. Status is stored as a plain string; the progress package
// owns the status vocabulary.
type ProgressRow struct {
	UserID      string
	SkillID     string
	Status      string
	CompletedAt *time.Time
}

// ProgressRepo reads and writes per-user skill progress. A missing row
// is equivalent to a not-started skill.
type ProgressRepo interface {
	// Progress returns the progress rows for the given skills, keyed
	// by skill ID. Skills with no row are absent from the map.
	Progress(ctx context.Context, userID string, skillIDs []string) (map[string]ProgressRow, error)

	// Upsert writes the progress record for (userID, skillID),
	// creating it if absent. The unique (user_id, skill_id) index at
	// the database resolves concurrent writers (last write wins).
	Upsert(ctx context.Context, userID, skillID, status string, completedAt *time.Time) error
}

// SessionRow is one logged study session.
type SessionRow struct {
	UserID       string
	SkillID      string
	DurationSecs int
	StartedAt    time.Time
	CompletedAt  time.Time
}

// SessionRepo appends to and reads the study-session log.
type SessionRepo interface {
	// Append records a session. Rows are never mutated or deleted.
	Append(ctx context.Context, row SessionRow) error

	// ForUser returns all sessions for a user in chronological order
	// (by start time).
	ForUser(ctx context.Context, userID string) ([]SessionRow, error)
}

// AttemptRow is one graded quiz submission.
type AttemptRow struct {
	UserID      string
	SkillID     string
	Score       int
	Passed      bool
	AttemptedAt time.Time
}

// AttemptRepo appends to and reads the quiz-attempt audit log.
type AttemptRepo interface {
	// Append records a grading event, pass or fail.
	Append(ctx context.Context, row AttemptRow) error

	// ForUserSkill returns all attempts for (userID, skillID) in
	// chronological order.
	ForUserSkill(ctx context.Context, userID, skillID string) ([]AttemptRow, error)
}
