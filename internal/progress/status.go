package progress

// Status represents a learner's position on one skill.
//
// The legal statuses form a small ladder: not_started → in_progress →
// completed. Moving up past not_started requires every prerequisite to
// be completed; moving down is an unconditional reset that never
// touches the session or attempt logs.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", &ErrInvalidStatus{Value: raw}
	}
	return s, nil
}

// Valid reports whether the status is one of the three known values.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Gated reports whether setting this status requires the prerequisite
// check. Resetting to not_started is always allowed.
func (s Status) Gated() bool {
	return s == StatusInProgress || s == StatusCompleted
}
