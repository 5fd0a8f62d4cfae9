package quiz

import "github.com/abhisek/skilltrail/internal/skillgraph"

// QuestionCount is the fixed number of questions per quiz.
const QuestionCount = 3

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// PassThreshold is the minimum score that completes a skill.
// Two of three correct rounds to 67, which clears it; one of three
// rounds to 33, which does not.
const PassThreshold = 66

// Question is one quiz question. The correct option index is engine
// internal and must never reach the client.
type Question struct {
	ID      string
	Prompt  string
	Options [OptionCount]string
	Correct int `json:"-"`
}

// QuestionSource supplies the question set for a skill. The grading
// step reuses the same source, so correct indices always line up with
// what was served.
type QuestionSource interface {
	// Questions returns exactly QuestionCount questions for the skill.
	Questions(skill skillgraph.Skill) ([]Question, error)
}
