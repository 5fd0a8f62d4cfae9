package skillgraph

// Lock computation. A skill's lock state is derived from the completed
// set on every read; it is never stored.

// IsLocked reports whether the skill has at least one prerequisite
// missing from the completed set. A skill with no prerequisites is
// never locked. Unknown skill IDs are reported as locked.
func IsLocked(id string, completed map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return true
	}
	for _, prereqID := range s.Prerequisites {
		if !completed[prereqID] {
			return true
		}
	}
	return false
}

// FirstUnmetPrerequisite returns the first prerequisite of the skill,
// in declaration order, that is missing from the completed set.
// The second return is false when every prerequisite is completed.
func FirstUnmetPrerequisite(id string, completed map[string]bool) (Skill, bool) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, false
	}
	for _, prereqID := range s.Prerequisites {
		if !completed[prereqID] {
			if p, ok := g.byID[prereqID]; ok {
				return *p, true
			}
			return Skill{ID: prereqID, Name: prereqID}, true
		}
	}
	return Skill{}, false
}

// AvailableSkills returns all skills that are unlocked but not yet
// completed, in topological order.
func AvailableSkills(completed map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if !completed[s.ID] && !IsLocked(s.ID, completed) {
			result = append(result, s)
		}
	}
	return result
}

// LockedSkills returns all skills that have at least one uncompleted
// prerequisite, in topological order.
func LockedSkills(completed map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if IsLocked(s.ID, completed) {
			result = append(result, s)
		}
	}
	return result
}
