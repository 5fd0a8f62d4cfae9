package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilltrail/internal/logger"
	"github.com/abhisek/skilltrail/internal/predict"
	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/quiz"
	"github.com/abhisek/skilltrail/internal/recommend"
	"github.com/abhisek/skilltrail/internal/store"
)

type memProgressRepo struct {
	rows map[string]store.ProgressRow // keyed by user|skill
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{rows: make(map[string]store.ProgressRow)}
}

func (m *memProgressRepo) Progress(_ context.Context, userID string, skillIDs []string) (map[string]store.ProgressRow, error) {
	out := make(map[string]store.ProgressRow)
	for _, id := range skillIDs {
		if row, ok := m.rows[userID+"|"+id]; ok {
			out[id] = row
		}
	}
	return out, nil
}

func (m *memProgressRepo) Upsert(_ context.Context, userID, skillID, status string, completedAt *time.Time) error {
	m.rows[userID+"|"+skillID] = store.ProgressRow{
		UserID:      userID,
		SkillID:     skillID,
		Status:      status,
		CompletedAt: completedAt,
	}
	return nil
}

type memSessionRepo struct {
	rows []store.SessionRow
}

func (m *memSessionRepo) Append(_ context.Context, row store.SessionRow) error {
	m.rows = append(m.rows, row)
	return nil
}

func (m *memSessionRepo) ForUser(_ context.Context, userID string) ([]store.SessionRow, error) {
	var out []store.SessionRow
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memAttemptRepo struct {
	rows []store.AttemptRow
}

func (m *memAttemptRepo) Append(_ context.Context, row store.AttemptRow) error {
	m.rows = append(m.rows, row)
	return nil
}

func (m *memAttemptRepo) ForUserSkill(_ context.Context, userID, skillID string) ([]store.AttemptRow, error) {
	var out []store.AttemptRow
	for _, r := range m.rows {
		if r.UserID == userID && r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	sessions := &memSessionRepo{}
	attempts := &memAttemptRepo{}

	prog := progress.NewService(newMemProgressRepo())
	return New(DefaultConfig(), logger.NewNop(), Deps{
		Progress:  prog,
		Quiz:      quiz.NewService(quiz.NewStaticBank(), attempts, prog),
		Predict:   predict.NewService(sessions, prog),
		Recommend: recommend.NewService(sessions, prog),
		Sessions:  sessions,
	})
}

func do(t *testing.T, h http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingUserRejected(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/roadmap", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env ErrorEnvelope
	decode(t, rec, &env)
	assert.Equal(t, CodeUnauthorized, env.Error.Code)
}

func TestRoadmapFresh(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/roadmap", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out roadmapResponse
	decode(t, rec, &out)
	require.Len(t, out.Skills, 17)
	assert.Equal(t, 0, out.PercentComplete)

	byID := make(map[string]skillView)
	for _, sv := range out.Skills {
		byID[sv.ID] = sv
	}
	assert.False(t, byID["prog-basics"].Locked, "prog-basics locked on a fresh roadmap")
	assert.True(t, byID["rest-api-design"].Locked, "rest-api-design unlocked without its prerequisites")
	assert.Equal(t, "not_started", byID["prog-basics"].Status)
}

func TestSetStatus(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	// In-progress on a root skill succeeds.
	rec := do(t, h, http.MethodPost, "/api/skills/prog-basics/status", "alice", `{"status":"in_progress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out statusResponse
	decode(t, rec, &out)
	assert.Equal(t, "in_progress", out.Status)
	assert.Nil(t, out.CompletedAt)

	// Completed sets the timestamp.
	rec = do(t, h, http.MethodPost, "/api/skills/prog-basics/status", "alice", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &out)
	assert.NotNil(t, out.CompletedAt)
}

func TestSetStatusGated(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodPost, "/api/skills/rest-api-design/status", "alice", `{"status":"in_progress"}`)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	var env ErrorEnvelope
	decode(t, rec, &env)
	assert.Equal(t, CodePrerequisiteNotMet, env.Error.Code)
	assert.NotEmpty(t, env.Error.Prerequisite)
}

func TestSetStatusInvalid(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/api/skills/prog-basics/status", "alice", `{"status":"mastered"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/skills/no-such-skill/status", "alice", `{"status":"in_progress"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetQuizHidesAnswers(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/skills/prog-basics/quiz", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out quizResponse
	decode(t, rec, &out)
	require.Len(t, out.Questions, quiz.QuestionCount)
	for _, q := range out.Questions {
		assert.Len(t, q.Options, quiz.OptionCount)
	}
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "correct",
		"quiz payload leaks the correct answer")
}

func TestSubmitQuiz(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/api/skills/prog-basics/quiz", "alice", `{"answers":[0,1,2]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out gradeResponse
	decode(t, rec, &out)
	assert.Equal(t, 100, out.Score)
	assert.True(t, out.Passed)

	// Pass drives the skill to completed on the roadmap.
	rec = do(t, h, http.MethodGet, "/api/roadmap", "alice", "")
	var rm roadmapResponse
	decode(t, rec, &rm)
	for _, sv := range rm.Skills {
		if sv.ID == "prog-basics" {
			assert.Equal(t, "completed", sv.Status)
		}
	}

	// The attempt is in the audit log.
	rec = do(t, h, http.MethodGet, "/api/skills/prog-basics/attempts", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var audit struct {
		Attempts []attemptView `json:"attempts"`
	}
	decode(t, rec, &audit)
	require.Len(t, audit.Attempts, 1)
	assert.Equal(t, 100, audit.Attempts[0].Score)
	assert.True(t, audit.Attempts[0].Passed)
}

func TestSubmitQuizInvalidAnswers(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodPost, "/api/skills/prog-basics/quiz", "alice", `{"answers":[0,1]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostPredict(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"sessions": [
			{"date": "2026-02-10", "hours": 2.5},
			{"date": "2026-02-11", "hours": 3.0},
			{"date": "2026-02-12", "hours": 1.5}
		],
		"remaining_hours": 24
	}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/predict", "", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out predict.Response
	decode(t, rec, &out)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, "2026-02-22", out.PredictedDate)
}

func TestPostPredictInsufficient(t *testing.T) {
	srv := newTestServer(t)
	body := `{"sessions": [{"date": "2026-02-01", "hours": 2}], "remaining_hours": 10}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/predict", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var out predict.Response
	decode(t, rec, &out)
	assert.Equal(t, "insufficient_data", out.Status)
	assert.Empty(t, out.PredictedDate)
}

func TestPostPredictInvalid(t *testing.T) {
	srv := newTestServer(t)
	body := `{"sessions": [{"date": "02/01/2026", "hours": 2}], "remaining_hours": 10}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/predict", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestPostSession(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/api/sessions", "alice",
		`{"skill_id":"prog-basics","duration_secs":5400,"started_at":"2026-02-01T09:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/sessions", "alice",
		`{"skill_id":"prog-basics","duration_secs":0,"started_at":"2026-02-01T09:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/sessions", "alice",
		`{"skill_id":"no-such-skill","duration_secs":60,"started_at":"2026-02-01T09:00:00Z"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommendationsEmptyHistory(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/recommendations", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Recommendations []recommend.Recommendation `json:"recommendations"`
	}
	decode(t, rec, &out)
	assert.NotNil(t, out.Recommendations, "recommendations should decode as an empty list, not null")
}

func TestForecastNoHistory(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/forecast", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out predict.Response
	decode(t, rec, &out)
	assert.Equal(t, "insufficient_data", out.Status)
}
