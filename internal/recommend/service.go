package recommend

import (
	"context"
	"time"

	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/store"
)

// Service assembles the recommendation inputs from the store.
type Service struct {
	sessions store.SessionRepo
	progress *progress.Service
	now      func() time.Time
}

// NewService creates a recommendation service.
func NewService(sessions store.SessionRepo, prog *progress.Service) *Service {
	return &Service{
		sessions: sessions,
		progress: prog,
		now:      time.Now,
	}
}

// ForUser derives the user's current recommendations: per-skill effort
// from the session log joined with the roadmap, plus session recency.
func (s *Service) ForUser(ctx context.Context, userID string) ([]Recommendation, error) {
	rm, err := s.progress.Roadmap(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.sessions.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hoursBySkill := make(map[string]float64, len(rows))
	var lastSessionAt time.Time
	for _, row := range rows {
		hoursBySkill[row.SkillID] += float64(row.DurationSecs) / 3600
		if row.StartedAt.After(lastSessionAt) {
			lastSessionAt = row.StartedAt
		}
	}

	efforts := make([]SkillEffort, 0, len(rm.Entries))
	for _, e := range rm.Entries {
		efforts = append(efforts, SkillEffort{
			Skill:      e.Skill,
			Status:     e.Status,
			HoursSpent: hoursBySkill[e.Skill.ID],
		})
	}

	return Recommend(efforts, lastSessionAt, s.now().UTC()), nil
}
