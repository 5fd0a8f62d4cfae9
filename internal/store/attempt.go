package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilltrail/ent"
	"github.com/abhisek/skilltrail/ent/quizattempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, row AttemptRow) error {
	create := r.client.QuizAttempt.Create().
		SetUserID(row.UserID).
		SetSkillID(row.SkillID).
		SetScore(row.Score).
		SetPassed(row.Passed)
	if !row.AttemptedAt.IsZero() {
		create = create.SetRecordedAt(row.AttemptedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ForUserSkill(ctx context.Context, userID, skillID string) ([]AttemptRow, error) {
	attempts, err := r.client.QuizAttempt.Query().
		Where(
			quizattempt.UserID(userID),
			quizattempt.SkillID(skillID),
		).
		Order(ent.Asc(quizattempt.FieldRecordedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	rows := make([]AttemptRow, 0, len(attempts))
	for _, qa := range attempts {
		rows = append(rows, AttemptRow{
			UserID:      qa.UserID,
			SkillID:     qa.SkillID,
			Score:       qa.Score,
			Passed:      qa.Passed,
			AttemptedAt: qa.RecordedAt,
		})
	}
	return rows, nil
}
