package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilltrail/ent"
	"github.com/abhisek/skilltrail/ent/studysession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Append(ctx context.Context, row SessionRow) error {
	_, err := r.client.StudySession.Create().
		SetUserID(row.UserID).
		SetSkillID(row.SkillID).
		SetDurationSecs(row.DurationSecs).
		SetStartedAt(row.StartedAt).
		SetCompletedAt(row.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

func (r *sessionRepo) ForUser(ctx context.Context, userID string) ([]SessionRow, error) {
	sessions, err := r.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Order(ent.Asc(studysession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study sessions: %w", err)
	}

	rows := make([]SessionRow, 0, len(sessions))
	for _, ss := range sessions {
		rows = append(rows, SessionRow{
			UserID:       ss.UserID,
			SkillID:      ss.SkillID,
			DurationSecs: ss.DurationSecs,
			StartedAt:    ss.StartedAt,
			CompletedAt:  ss.CompletedAt,
		})
	}
	return rows, nil
}
