package quiz

import (
	"fmt"

	"github.com/abhisek/skilltrail/internal/skillgraph"
)

// StaticBank serves the fixed shared question set. Question IDs are
// namespaced per skill so attempts stay distinguishable, but the
// prompts and correct indices are identical for every skill.
type StaticBank struct{}

// NewStaticBank returns the fixed-bank question source.
func NewStaticBank() *StaticBank {
	return &StaticBank{}
}

func (b *StaticBank) Questions(skill skillgraph.Skill) ([]Question, error) {
	return []Question{
		{
			ID:     fmt.Sprintf("%s-q1", skill.ID),
			Prompt: fmt.Sprintf("What is the most effective first step when starting %q?", skill.Name),
			Options: [OptionCount]string{
				"Work through the core concepts before touching advanced material",
				"Skip directly to the hardest exercises",
				"Memorize terminology without practicing",
				"Wait until every other skill is finished",
			},
			Correct: 0,
		},
		{
			ID:     fmt.Sprintf("%s-q2", skill.ID),
			Prompt: fmt.Sprintf("Which habit best reinforces what you learn in %q?", skill.Name),
			Options: [OptionCount]string{
				"Rereading notes once at the end",
				"Regular short practice sessions with feedback",
				"Studying only the night before an assessment",
				"Avoiding mistakes by sticking to solved examples",
			},
			Correct: 1,
		},
		{
			ID:     fmt.Sprintf("%s-q3", skill.ID),
			Prompt: fmt.Sprintf("How do you know you are ready to move past %q?", skill.Name),
			Options: [OptionCount]string{
				"You have spent a fixed number of hours on it",
				"You can quote the reference material",
				"You can apply it to a new problem without guidance",
				"You feel bored with the topic",
			},
			Correct: 2,
		},
	}, nil
}
