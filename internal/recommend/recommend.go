package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/skillgraph"
)

// Class orders recommendations for display: warnings first, then
// info, then success.
type Class string

const (
	ClassWarning Class = "warning"
	ClassInfo    Class = "info"
	ClassSuccess Class = "success"
)

func classRank(c Class) int {
	switch c {
	case ClassWarning:
		return 0
	case ClassInfo:
		return 1
	default:
		return 2
	}
}

// Recommendation is one advisory message derived from progress and
// session history.
type Recommendation struct {
	Class   Class  `json:"class"`
	SkillID string `json:"skill_id,omitempty"`
	Message string `json:"message"`
}

// SkillEffort pairs a skill with the learner's status and the hours
// logged against it.
type SkillEffort struct {
	Skill      skillgraph.Skill
	Status     progress.Status
	HoursSpent float64
}

// Effort-ratio thresholds relative to a skill's expected hours.
const (
	struggleRatio = 1.5
	rushRatio     = 0.5
)

// StaleAfter is how long without a session counts as a broken streak.
const StaleAfter = 3 * 24 * time.Hour

// Recommend derives advisory messages from per-skill effort and the
// time of the most recent session (zero when none exist). The result
// ordering is deterministic: classes in warning < info < success
// order, original relative order preserved within a class.
func Recommend(efforts []SkillEffort, lastSessionAt, now time.Time) []Recommendation {
	var recs []Recommendation
	hasProgress := false

	for _, e := range efforts {
		expected := e.Skill.ExpectedHours()
		switch e.Status {
		case progress.StatusInProgress:
			hasProgress = true
			if e.HoursSpent > struggleRatio*expected {
				recs = append(recs, Recommendation{
					Class:   ClassWarning,
					SkillID: e.Skill.ID,
					Message: fmt.Sprintf("Struggling with %q: %.1fh spent against ~%.0fh expected. Consider revisiting its prerequisites.",
						e.Skill.Name, e.HoursSpent, expected),
				})
			}
		case progress.StatusCompleted:
			hasProgress = true
			switch {
			case e.HoursSpent > 0 && e.HoursSpent < rushRatio*expected:
				recs = append(recs, Recommendation{
					Class:   ClassWarning,
					SkillID: e.Skill.ID,
					Message: fmt.Sprintf("%q was completed in %.1fh, well under the ~%.0fh expected. A quick review could help it stick.",
						e.Skill.Name, e.HoursSpent, expected),
				})
			case e.HoursSpent >= rushRatio*expected && e.HoursSpent <= struggleRatio*expected:
				recs = append(recs, Recommendation{
					Class:   ClassSuccess,
					SkillID: e.Skill.ID,
					Message: fmt.Sprintf("Good pace on %q.", e.Skill.Name),
				})
			}
		}
	}

	if inProg, ok := firstInProgress(efforts); ok && now.Sub(lastSessionAt) > StaleAfter {
		recs = append(recs, Recommendation{
			Class:   ClassInfo,
			SkillID: inProg.ID,
			Message: fmt.Sprintf("No study sessions in the last 3 days. Pick %q back up to keep momentum.", inProg.Name),
		})
	}

	if len(recs) == 0 && hasProgress {
		recs = append(recs, Recommendation{
			Class:   ClassSuccess,
			Message: "Progress looks steady. Keep going!",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return classRank(recs[i].Class) < classRank(recs[j].Class)
	})
	return recs
}

func firstInProgress(efforts []SkillEffort) (skillgraph.Skill, bool) {
	for _, e := range efforts {
		if e.Status == progress.StatusInProgress {
			return e.Skill, true
		}
	}
	return skillgraph.Skill{}, false
}
