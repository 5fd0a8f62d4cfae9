package predict

import (
	"context"
	"time"

	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/store"
)

// Service forecasts completion for a user from their logged sessions
// and outstanding core-track workload.
type Service struct {
	sessions *SessionReader
	progress *progress.Service
	now      func() time.Time
}

// SessionReader adapts the session log into predictor observations.
type SessionReader struct {
	repo store.SessionRepo
}

// NewSessionReader wraps a session repo.
func NewSessionReader(repo store.SessionRepo) *SessionReader {
	return &SessionReader{repo: repo}
}

// ForUser loads a user's sessions as (date, hours) observations in
// chronological order.
func (r *SessionReader) ForUser(ctx context.Context, userID string) ([]Session, error) {
	rows, err := r.repo.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions := make([]Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, Session{
			Date:  dateOnly(row.StartedAt),
			Hours: float64(row.DurationSecs) / 3600,
		})
	}
	return sessions, nil
}

// NewService creates a forecast service.
func NewService(sessions store.SessionRepo, prog *progress.Service) *Service {
	return &Service{
		sessions: NewSessionReader(sessions),
		progress: prog,
		now:      time.Now,
	}
}

// Forecast predicts when the user will finish the core track.
func (s *Service) Forecast(ctx context.Context, userID string) (Result, error) {
	sessions, err := s.sessions.ForUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	remaining, err := s.progress.RemainingHours(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return Predict(sessions, remaining, s.now().UTC()), nil
}
