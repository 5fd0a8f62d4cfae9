package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skilltrail/ent"
	"github.com/abhisek/skilltrail/ent/progressrecord"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Progress(ctx context.Context, userID string, skillIDs []string) (map[string]ProgressRow, error) {
	records, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.SkillIDIn(skillIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	result := make(map[string]ProgressRow, len(records))
	for _, pr := range records {
		result[pr.SkillID] = ProgressRow{
			UserID:      pr.UserID,
			SkillID:     pr.SkillID,
			Status:      pr.Status,
			CompletedAt: pr.CompletedAt,
		}
	}
	return result, nil
}

func (r *progressRepo) Upsert(ctx context.Context, userID, skillID, status string, completedAt *time.Time) error {
	create := r.client.ProgressRecord.Create().
		SetUserID(userID).
		SetSkillID(skillID).
		SetStatus(status).
		SetNillableCompletedAt(completedAt)

	err := create.
		OnConflictColumns(progressrecord.FieldUserID, progressrecord.FieldSkillID).
		Update(func(u *ent.ProgressRecordUpsert) {
			u.SetStatus(status)
			if completedAt != nil {
				u.SetCompletedAt(*completedAt)
			} else {
				u.ClearCompletedAt()
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
