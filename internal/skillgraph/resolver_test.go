package skillgraph

import "testing"

func TestIsLocked_NoPrerequisites(t *testing.T) {
	// Skills with no prerequisites are never locked, whatever the
	// completed set looks like.
	completedSets := []map[string]bool{
		nil,
		{},
		{"prog-basics": true},
		{"http-fundamentals": true, "rest-api-design": true},
	}
	for _, s := range RootSkills() {
		for _, completed := range completedSets {
			if IsLocked(s.ID, completed) {
				t.Errorf("root skill %q locked with completed=%v", s.ID, completed)
			}
		}
	}
}

func TestIsLocked_UnmetPrerequisite(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		completed map[string]bool
		want      bool
	}{
		{"no progress", "http-fundamentals", nil, true},
		{"prereq completed", "http-fundamentals", map[string]bool{"prog-basics": true}, false},
		{"one of two met", "ci-cd", map[string]bool{"version-control": true}, true},
		{"both met", "ci-cd", map[string]bool{"version-control": true, "testing-strategies": true}, false},
		{"unrelated completion", "rest-api-design", map[string]bool{"prog-basics": true}, true},
		{"unknown skill", "nonexistent", map[string]bool{"prog-basics": true}, true},
	}
	for _, tt := range tests {
		if got := IsLocked(tt.id, tt.completed); got != tt.want {
			t.Errorf("%s: IsLocked(%q) = %v, want %v", tt.name, tt.id, got, tt.want)
		}
	}
}

func TestFirstUnmetPrerequisite_DeclarationOrder(t *testing.T) {
	// ci-cd declares [version-control, testing-strategies].
	p, ok := FirstUnmetPrerequisite("ci-cd", nil)
	if !ok {
		t.Fatal("expected an unmet prerequisite")
	}
	if p.ID != "version-control" {
		t.Errorf("got %q, want version-control", p.ID)
	}

	p, ok = FirstUnmetPrerequisite("ci-cd", map[string]bool{"version-control": true})
	if !ok {
		t.Fatal("expected an unmet prerequisite")
	}
	if p.ID != "testing-strategies" {
		t.Errorf("got %q, want testing-strategies", p.ID)
	}

	_, ok = FirstUnmetPrerequisite("ci-cd", map[string]bool{
		"version-control":    true,
		"testing-strategies": true,
	})
	if ok {
		t.Error("expected no unmet prerequisite when all are completed")
	}
}

func TestAvailableSkills_Initial(t *testing.T) {
	available := AvailableSkills(nil)
	if len(available) != len(RootSkills()) {
		t.Errorf("with no progress, available = %d skills, want %d roots",
			len(available), len(RootSkills()))
	}
}

func TestAvailableSkills_Unlocking(t *testing.T) {
	completed := map[string]bool{"prog-basics": true}
	available := AvailableSkills(completed)

	ids := make(map[string]bool, len(available))
	for _, s := range available {
		ids[s.ID] = true
	}
	if !ids["http-fundamentals"] {
		t.Error("http-fundamentals should unlock after prog-basics")
	}
	if ids["prog-basics"] {
		t.Error("completed skill should not be listed as available")
	}
	if ids["rest-api-design"] {
		t.Error("rest-api-design should stay locked behind http-fundamentals")
	}
}

func TestLockedSkills_Disjoint(t *testing.T) {
	completed := map[string]bool{"prog-basics": true, "version-control": true}
	locked := LockedSkills(completed)
	available := AvailableSkills(completed)

	lockedIDs := make(map[string]bool, len(locked))
	for _, s := range locked {
		lockedIDs[s.ID] = true
	}
	for _, s := range available {
		if lockedIDs[s.ID] {
			t.Errorf("skill %q both locked and available", s.ID)
		}
	}
}
