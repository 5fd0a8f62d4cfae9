package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/skilltrail/internal/predict"
	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/quiz"
	"github.com/abhisek/skilltrail/internal/recommend"
	"github.com/abhisek/skilltrail/internal/skillgraph"
	"github.com/abhisek/skilltrail/internal/store"
)

type handlers struct {
	progress  *progress.Service
	quiz      *quiz.Service
	predict   *predict.Service
	recommend *recommend.Service
	sessions  store.SessionRepo
	now       func() time.Time
}

// skillView is the wire form of a roadmap entry.
type skillView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Track         string   `json:"track"`
	Level         int      `json:"level"`
	Core          bool     `json:"core"`
	Prerequisites []string `json:"prerequisites"`
	ExpectedHours float64  `json:"expected_hours"`
	Status        string   `json:"status"`
	CompletedAt   *string  `json:"completed_at,omitempty"`
	Locked        bool     `json:"locked"`
}

type roadmapResponse struct {
	Skills          []skillView `json:"skills"`
	PercentComplete int         `json:"percent_complete"`
}

func (h *handlers) getRoadmap(c *gin.Context) {
	rm, err := h.progress.Roadmap(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := roadmapResponse{
		Skills:          make([]skillView, 0, len(rm.Entries)),
		PercentComplete: rm.PercentComplete,
	}
	for _, e := range rm.Entries {
		v := skillView{
			ID:            e.Skill.ID,
			Name:          e.Skill.Name,
			Description:   e.Skill.Description,
			Track:         string(e.Skill.Track),
			Level:         int(e.Skill.Level),
			Core:          e.Skill.Core,
			Prerequisites: e.Skill.Prerequisites,
			ExpectedHours: e.Skill.ExpectedHours(),
			Status:        string(e.Status),
			Locked:        e.Locked,
		}
		if v.Prerequisites == nil {
			v.Prerequisites = []string{}
		}
		if e.CompletedAt != nil {
			s := e.CompletedAt.UTC().Format(time.RFC3339)
			v.CompletedAt = &s
		}
		out.Skills = append(out.Skills, v)
	}
	c.JSON(http.StatusOK, out)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	SkillID     string  `json:"skill_id"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

func (h *handlers) setStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "malformed request body")
		return
	}
	target, err := progress.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	row, err := h.progress.SetStatus(c.Request.Context(), currentUser(c), c.Param("id"), target)
	if err != nil {
		respondError(c, err)
		return
	}

	out := statusResponse{SkillID: row.SkillID, Status: row.Status}
	if row.CompletedAt != nil {
		s := row.CompletedAt.UTC().Format(time.RFC3339)
		out.CompletedAt = &s
	}
	c.JSON(http.StatusOK, out)
}

// questionView deliberately omits the correct answer index.
type questionView struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type quizResponse struct {
	SkillID   string         `json:"skill_id"`
	Questions []questionView `json:"questions"`
}

func (h *handlers) getQuiz(c *gin.Context) {
	skillID := c.Param("id")
	qs, err := h.quiz.Questions(skillID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := quizResponse{SkillID: skillID, Questions: make([]questionView, 0, len(qs))}
	for _, q := range qs {
		out.Questions = append(out.Questions, questionView{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options[:],
		})
	}
	c.JSON(http.StatusOK, out)
}

type gradeRequest struct {
	Answers []int `json:"answers"`
}

type gradeResponse struct {
	SkillID string `json:"skill_id"`
	Score   int    `json:"score"`
	Passed  bool   `json:"passed"`
	Warning string `json:"warning,omitempty"`
}

func (h *handlers) submitQuiz(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "malformed request body")
		return
	}

	skillID := c.Param("id")
	res, err := h.quiz.Grade(c.Request.Context(), currentUser(c), skillID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gradeResponse{
		SkillID: skillID,
		Score:   res.Score,
		Passed:  res.Passed,
		Warning: res.Warning,
	})
}

type attemptView struct {
	Score       int    `json:"score"`
	Passed      bool   `json:"passed"`
	AttemptedAt string `json:"attempted_at"`
}

func (h *handlers) getAttempts(c *gin.Context) {
	skillID := c.Param("id")
	rows, err := h.quiz.Attempts(c.Request.Context(), currentUser(c), skillID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]attemptView, 0, len(rows))
	for _, r := range rows {
		out = append(out, attemptView{
			Score:       r.Score,
			Passed:      r.Passed,
			AttemptedAt: r.AttemptedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"skill_id": skillID, "attempts": out})
}

func (h *handlers) getRecommendations(c *gin.Context) {
	recs, err := h.recommend.ForUser(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

type sessionRequest struct {
	SkillID      string `json:"skill_id"`
	DurationSecs int    `json:"duration_secs"`
	StartedAt    string `json:"started_at"`
}

func (h *handlers) postSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "malformed request body")
		return
	}
	if req.DurationSecs <= 0 {
		respondInvalid(c, "duration_secs must be positive")
		return
	}
	if _, err := skillgraph.GetSkill(req.SkillID); err != nil {
		respondError(c, err)
		return
	}

	started, err := time.Parse(time.RFC3339, req.StartedAt)
	if err != nil {
		respondInvalid(c, "started_at must be RFC 3339")
		return
	}
	started = started.UTC()

	row := store.SessionRow{
		UserID:       currentUser(c),
		SkillID:      req.SkillID,
		DurationSecs: req.DurationSecs,
		StartedAt:    started,
		CompletedAt:  started.Add(time.Duration(req.DurationSecs) * time.Second),
	}
	if err := h.sessions.Append(c.Request.Context(), row); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"skill_id":      row.SkillID,
		"duration_secs": row.DurationSecs,
		"started_at":    row.StartedAt.Format(time.RFC3339),
		"completed_at":  row.CompletedAt.Format(time.RFC3339),
	})
}

// postPredict is the stateless prediction endpoint: the caller supplies
// the session history and remaining workload in the request body.
func (h *handlers) postPredict(c *gin.Context) {
	var req predict.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "malformed request body")
		return
	}

	sessions, remaining, err := predict.ParseRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}
	res := predict.Predict(sessions, remaining, h.now())
	c.JSON(http.StatusOK, predict.BuildResponse(res))
}

// getForecast is the stateful variant: history and remaining workload
// come from the user's own session log and roadmap.
func (h *handlers) getForecast(c *gin.Context) {
	res, err := h.predict.Forecast(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, predict.BuildResponse(res))
}

func (h *handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
