package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the skill DAG with precomputed indices.
type graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byTrack    map[Track][]Skill
	byLevel    map[int][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of skills.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byTrack:    make(map[Track][]Skill),
		byLevel:    make(map[int][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	// Build ID index
	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}

	// Build reverse edges (dependents)
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	var topoOrder []Skill
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		skill := gr.byID[id]
		topoOrder = append(topoOrder, *skill)

		deps := gr.dependents[id]
		// Sort dependents for deterministic ordering
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, s := range gr.topoOrder {
		gr.topoIndex[s.ID] = i
	}

	// Identify roots
	for i := range gr.skills {
		if len(gr.skills[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.skills[i])
		}
	}

	// Track ordering: all tracks in defined order
	trackOrder := AllTracks()
	trackIdx := make(map[Track]int, len(trackOrder))
	for i, t := range trackOrder {
		trackIdx[t] = i
	}

	// Group by track, sorted by level asc then topo index
	trackGroups := make(map[Track][]Skill)
	for i := range gr.skills {
		s := gr.skills[i]
		trackGroups[s.Track] = append(trackGroups[s.Track], s)
	}
	for track, skills := range trackGroups {
		sorted := make([]Skill, len(skills))
		copy(sorted, skills)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Level != sorted[j].Level {
				return sorted[i].Level < sorted[j].Level
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byTrack[track] = sorted
	}

	// Group by level, sorted by track order then topo index
	levelGroups := make(map[int][]Skill)
	for i := range gr.skills {
		s := gr.skills[i]
		levelGroups[s.Level] = append(levelGroups[s.Level], s)
	}
	for level, skills := range levelGroups {
		sorted := make([]Skill, len(skills))
		copy(sorted, skills)
		sort.Slice(sorted, func(i, j int) bool {
			ti := trackIdx[sorted[i].Track]
			tj := trackIdx[sorted[j].Track]
			if ti != tj {
				return ti < tj
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byLevel[level] = sorted
	}

	return gr
}

// GetSkill returns a skill by ID, or ErrSkillNotFound if absent.
func GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, &ErrSkillNotFound{ID: id}
	}
	return *s, nil
}

// AllSkills returns all skills in the graph.
func AllSkills() []Skill {
	return slices.Clone(g.skills)
}

// ByTrack returns all skills in a given track, ordered by level then topological position.
func ByTrack(track Track) []Skill {
	return slices.Clone(g.byTrack[track])
}

// ByLevel returns all skills at a given difficulty level, ordered by track then topological position.
func ByLevel(level int) []Skill {
	return slices.Clone(g.byLevel[level])
}

// RootSkills returns all skills with no prerequisites.
func RootSkills() []Skill {
	return slices.Clone(g.roots)
}

// CoreSkills returns all skills flagged as part of the core track, in topological order.
func CoreSkills() []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if s.Core {
			result = append(result, s)
		}
	}
	return result
}

// Prerequisites returns the direct prerequisite skills for a given skill ID,
// in the order they are declared on the skill.
func Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// TopologicalOrder returns all skills in a valid topological order.
func TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// Validate checks the graph for structural issues.
// It delegates to validateSkills with the graph's skill set.
func Validate() error {
	return validateSkills(g.skills)
}

// ErrSkillNotFound indicates a skill ID absent from the curriculum graph.
type ErrSkillNotFound struct {
	ID string
}

func (e *ErrSkillNotFound) Error() string {
	return fmt.Sprintf("skill not found: %q", e.ID)
}
