package quiz

import "fmt"

// ErrInvalidAnswers indicates a malformed answer vector: wrong length
// or an option index outside the valid range. Rejected before any
// mutation.
type ErrInvalidAnswers struct {
	Reason string
}

func (e *ErrInvalidAnswers) Error() string {
	return fmt.Sprintf("invalid answers: %s", e.Reason)
}

// ErrBadQuestionSet indicates a question source violated its contract.
type ErrBadQuestionSet struct {
	Got int
}

func (e *ErrBadQuestionSet) Error() string {
	return fmt.Sprintf("question source returned %d questions, want %d", e.Got, QuestionCount)
}
