package skillgraph

// Track represents a curriculum content track.
type Track string

const (
	TrackFoundations Track = "foundations"
	TrackBackend     Track = "backend-development"
	TrackData        Track = "data-and-storage"
	TrackDelivery    Track = "delivery-and-operations"
)

// AllTracks returns all tracks in display order.
func AllTracks() []Track {
	return []Track{
		TrackFoundations,
		TrackBackend,
		TrackData,
		TrackDelivery,
	}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackFoundations:
		return "Foundations"
	case TrackBackend:
		return "Backend Development"
	case TrackData:
		return "Data & Storage"
	case TrackDelivery:
		return "Delivery & Operations"
	default:
		return string(t)
	}
}

// Difficulty levels. Each skill sits at exactly one level; expected
// study effort scales linearly with it.
const (
	LevelFoundation     = 1
	LevelCore           = 2
	LevelSpecialization = 3
)

// LevelLabel returns a human-readable name for a difficulty level.
func LevelLabel(level int) string {
	switch level {
	case LevelFoundation:
		return "Foundation"
	case LevelCore:
		return "Core"
	case LevelSpecialization:
		return "Specialization"
	default:
		return "Unknown"
	}
}

// HoursPerLevel is the expected study effort per difficulty level.
const HoursPerLevel = 2.0

// Skill represents a single skill node in the curriculum graph.
type Skill struct {
	ID            string
	Name          string
	Description   string
	Track         Track
	Level         int  // 1-3 (Foundation/Core/Specialization)
	Core          bool // counted toward the completion forecast workload
	Prerequisites []string
}

// ExpectedHours returns the study effort a learner is expected to
// spend on this skill.
func (s Skill) ExpectedHours() float64 {
	return HoursPerLevel * float64(s.Level)
}
