package quiz

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/skillgraph"
	"github.com/abhisek/skilltrail/internal/store"
)

// Service generates quizzes and grades submissions.
type Service struct {
	source   QuestionSource
	attempts store.AttemptRepo
	progress *progress.Service
	now      func() time.Time
}

// NewService creates a quiz service. Passing grades drive the progress
// service to completed.
func NewService(source QuestionSource, attempts store.AttemptRepo, prog *progress.Service) *Service {
	return &Service{
		source:   source,
		attempts: attempts,
		progress: prog,
		now:      time.Now,
	}
}

// Questions returns the question set for a skill.
func (s *Service) Questions(skillID string) ([]Question, error) {
	skill, err := skillgraph.GetSkill(skillID)
	if err != nil {
		return nil, err
	}
	questions, err := s.source.Questions(skill)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) != QuestionCount {
		return nil, &ErrBadQuestionSet{Got: len(questions)}
	}
	return questions, nil
}

// Result is the outcome of grading one submission.
type Result struct {
	Score   int
	Passed  bool
	Warning string // set when the downstream progress write failed
}

// Grade scores a submitted answer vector against the skill's question
// set.
//
// Every grading event appends an attempt record, pass or fail. A
// passing grade additionally drives the skill to completed; if that
// write fails the quiz result still stands and the failure is surfaced
// on Result.Warning rather than as an error.
func (s *Service) Grade(ctx context.Context, userID, skillID string, answers []int) (Result, error) {
	questions, err := s.Questions(skillID)
	if err != nil {
		return Result{}, err
	}

	if len(answers) != QuestionCount {
		return Result{}, &ErrInvalidAnswers{
			Reason: fmt.Sprintf("expected %d answers, got %d", QuestionCount, len(answers)),
		}
	}
	for i, a := range answers {
		if a < 0 || a >= OptionCount {
			return Result{}, &ErrInvalidAnswers{
				Reason: fmt.Sprintf("answer %d is out of range: %d", i, a),
			}
		}
	}

	correct := 0
	for i, q := range questions {
		if answers[i] == q.Correct {
			correct++
		}
	}
	score := int(math.Round(100 * float64(correct) / float64(QuestionCount)))
	passed := score >= PassThreshold

	err = s.attempts.Append(ctx, store.AttemptRow{
		UserID:      userID,
		SkillID:     skillID,
		Score:       score,
		Passed:      passed,
		AttemptedAt: s.now().UTC(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("append quiz attempt: %w", err)
	}

	result := Result{Score: score, Passed: passed}
	if passed {
		if _, err := s.progress.SetStatus(ctx, userID, skillID, progress.StatusCompleted); err != nil {
			result.Warning = fmt.Sprintf("quiz passed but progress was not updated: %v", err)
		}
	}
	return result, nil
}

// Attempts returns the audit log of grading events for (user, skill).
func (s *Service) Attempts(ctx context.Context, userID, skillID string) ([]store.AttemptRow, error) {
	if _, err := skillgraph.GetSkill(skillID); err != nil {
		return nil, err
	}
	return s.attempts.ForUserSkill(ctx, userID, skillID)
}
