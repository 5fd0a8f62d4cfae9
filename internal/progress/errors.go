package progress

import "fmt"

// ErrPrerequisiteNotMet indicates a gated status change was rejected
// because a prerequisite skill is not completed. No mutation happens
// when this is returned.
type ErrPrerequisiteNotMet struct {
	SkillID          string // skill the learner tried to change
	PrerequisiteID   string // first unmet prerequisite, in declaration order
	PrerequisiteName string
}

func (e *ErrPrerequisiteNotMet) Error() string {
	return fmt.Sprintf("prerequisite not met for %q: complete %q first", e.SkillID, e.PrerequisiteName)
}

// ErrInvalidStatus indicates an unknown status value.
type ErrInvalidStatus struct {
	Value string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid status: %q", e.Value)
}
