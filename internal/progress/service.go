package progress

import (
	"context"
	"math"
	"time"

	"github.com/abhisek/skilltrail/internal/skillgraph"
	"github.com/abhisek/skilltrail/internal/store"
)

// Service applies status changes and builds per-user roadmap views.
type Service struct {
	repo store.ProgressRepo
	now  func() time.Time
}

// NewService creates a progress service backed by the given repo.
func NewService(repo store.ProgressRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetStatus upserts the progress record for (userID, skillID).
//
// Moving to in_progress or completed requires every prerequisite of
// the skill to be completed for this user; the first unmet
// prerequisite, in declaration order, is reported and nothing is
// written. Resetting to not_started has no precondition. The
// completion timestamp is set only when the target is completed.
func (s *Service) SetStatus(ctx context.Context, userID, skillID string, target Status) (store.ProgressRow, error) {
	if _, err := skillgraph.GetSkill(skillID); err != nil {
		return store.ProgressRow{}, err
	}
	if !target.Valid() {
		return store.ProgressRow{}, &ErrInvalidStatus{Value: string(target)}
	}

	if target.Gated() {
		completed, err := s.Completed(ctx, userID)
		if err != nil {
			return store.ProgressRow{}, err
		}
		if unmet, ok := skillgraph.FirstUnmetPrerequisite(skillID, completed); ok {
			return store.ProgressRow{}, &ErrPrerequisiteNotMet{
				SkillID:          skillID,
				PrerequisiteID:   unmet.ID,
				PrerequisiteName: unmet.Name,
			}
		}
	}

	var completedAt *time.Time
	if target == StatusCompleted {
		now := s.now().UTC()
		completedAt = &now
	}

	if err := s.repo.Upsert(ctx, userID, skillID, string(target), completedAt); err != nil {
		return store.ProgressRow{}, err
	}
	return store.ProgressRow{
		UserID:      userID,
		SkillID:     skillID,
		Status:      string(target),
		CompletedAt: completedAt,
	}, nil
}

// Completed returns the set of skill IDs the user has completed.
// Lock state is always derived from this set on read, never stored.
func (s *Service) Completed(ctx context.Context, userID string) (map[string]bool, error) {
	skills := skillgraph.AllSkills()
	ids := make([]string, len(skills))
	for i, sk := range skills {
		ids[i] = sk.ID
	}

	rows, err := s.repo.Progress(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(rows))
	for id, row := range rows {
		if Status(row.Status) == StatusCompleted {
			completed[id] = true
		}
	}
	return completed, nil
}

// Entry is one skill on a user's roadmap.
type Entry struct {
	Skill       skillgraph.Skill
	Status      Status
	CompletedAt *time.Time
	Locked      bool
}

// Roadmap is the full progress view for one user, skills in
// topological order.
type Roadmap struct {
	Entries         []Entry
	PercentComplete int
}

// Roadmap builds the roadmap view: every skill with its status
// (missing records read as not_started), derived lock state, and the
// overall completion percentage.
func (s *Service) Roadmap(ctx context.Context, userID string) (Roadmap, error) {
	skills := skillgraph.TopologicalOrder()
	ids := make([]string, len(skills))
	for i, sk := range skills {
		ids[i] = sk.ID
	}

	rows, err := s.repo.Progress(ctx, userID, ids)
	if err != nil {
		return Roadmap{}, err
	}

	completed := make(map[string]bool, len(rows))
	for id, row := range rows {
		if Status(row.Status) == StatusCompleted {
			completed[id] = true
		}
	}

	rm := Roadmap{Entries: make([]Entry, 0, len(skills))}
	completedCount := 0
	for _, sk := range skills {
		e := Entry{
			Skill:  sk,
			Status: StatusNotStarted,
			Locked: skillgraph.IsLocked(sk.ID, completed),
		}
		if row, ok := rows[sk.ID]; ok {
			e.Status = Status(row.Status)
			e.CompletedAt = row.CompletedAt
		}
		if e.Status == StatusCompleted {
			completedCount++
		}
		rm.Entries = append(rm.Entries, e)
	}
	rm.PercentComplete = percent(completedCount, len(skills))
	return rm, nil
}

// RemainingHours returns the expected study effort left on the core
// track: the sum of expected hours over uncompleted core skills.
func (s *Service) RemainingHours(ctx context.Context, userID string) (float64, error) {
	completed, err := s.Completed(ctx, userID)
	if err != nil {
		return 0, err
	}

	var remaining float64
	for _, sk := range skillgraph.CoreSkills() {
		if !completed[sk.ID] {
			remaining += sk.ExpectedHours()
		}
	}
	return remaining, nil
}

// percent computes round(100 * done / total), 0 when total is 0.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
