package skillgraph

import (
	"errors"
	"testing"
)

func TestGetSkill_Exists(t *testing.T) {
	s, err := GetSkill("http-fundamentals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "HTTP Fundamentals" {
		t.Errorf("got name %q, want %q", s.Name, "HTTP Fundamentals")
	}
	if s.Track != TrackBackend {
		t.Errorf("got track %q, want %q", s.Track, TrackBackend)
	}
	if s.Level != LevelCore {
		t.Errorf("got level %d, want %d", s.Level, LevelCore)
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	_, err := GetSkill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
	var nf *ErrSkillNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected *ErrSkillNotFound, got %T", err)
	}
	if nf.ID != "nonexistent" {
		t.Errorf("got ID %q, want %q", nf.ID, "nonexistent")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := AllSkills()
	if len(all) != 17 {
		t.Errorf("got %d skills, want 17", len(all))
	}
}

func TestByTrack(t *testing.T) {
	tests := []struct {
		track Track
		want  int
	}{
		{TrackFoundations, 4},
		{TrackBackend, 5},
		{TrackData, 4},
		{TrackDelivery, 4},
	}
	for _, tt := range tests {
		skills := ByTrack(tt.track)
		if len(skills) != tt.want {
			t.Errorf("ByTrack(%q): got %d skills, want %d", tt.track, len(skills), tt.want)
		}
	}
}

func TestByTrack_SortedByLevel(t *testing.T) {
	for _, track := range AllTracks() {
		skills := ByTrack(track)
		for i := 1; i < len(skills); i++ {
			if skills[i].Level < skills[i-1].Level {
				t.Errorf("ByTrack(%q): skill %q (level %d) appears after %q (level %d)",
					track, skills[i].ID, skills[i].Level, skills[i-1].ID, skills[i-1].Level)
			}
		}
	}
}

func TestByLevel(t *testing.T) {
	total := 0
	for level := LevelFoundation; level <= LevelSpecialization; level++ {
		skills := ByLevel(level)
		for _, s := range skills {
			if s.Level != level {
				t.Errorf("ByLevel(%d) result contains skill %q with level %d", level, s.ID, s.Level)
			}
		}
		total += len(skills)
	}
	if total != len(AllSkills()) {
		t.Errorf("levels 1+2+3 total: got %d, want %d", total, len(AllSkills()))
	}
	if got := ByLevel(4); len(got) != 0 {
		t.Errorf("ByLevel(4): got %d skills, want 0", len(got))
	}
}

func TestRootSkills(t *testing.T) {
	roots := RootSkills()
	if len(roots) == 0 {
		t.Fatal("expected at least one root skill")
	}
	for _, s := range roots {
		if len(s.Prerequisites) != 0 {
			t.Errorf("root skill %q has prerequisites: %v", s.ID, s.Prerequisites)
		}
	}
	found := false
	for _, s := range roots {
		if s.ID == "prog-basics" {
			found = true
			break
		}
	}
	if !found {
		t.Error("prog-basics should be a root skill")
	}
}

func TestCoreSkills_TopoOrdered(t *testing.T) {
	core := CoreSkills()
	if len(core) == 0 {
		t.Fatal("expected at least one core skill")
	}
	idx := make(map[string]int, len(core))
	for i, s := range core {
		if !s.Core {
			t.Errorf("non-core skill %q in CoreSkills", s.ID)
		}
		idx[s.ID] = i
	}
	// Every core prerequisite of a core skill precedes it.
	for _, s := range core {
		for _, p := range s.Prerequisites {
			if pi, ok := idx[p]; ok && pi > idx[s.ID] {
				t.Errorf("core skill %q appears before its prerequisite %q", s.ID, p)
			}
		}
	}
}

func TestPrerequisites_DeclarationOrder(t *testing.T) {
	prereqs := Prerequisites("ci-cd")
	if len(prereqs) != 2 {
		t.Fatalf("got %d prerequisites, want 2", len(prereqs))
	}
	if prereqs[0].ID != "version-control" || prereqs[1].ID != "testing-strategies" {
		t.Errorf("got order [%s, %s], want [version-control, testing-strategies]",
			prereqs[0].ID, prereqs[1].ID)
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("containers")
	ids := make(map[string]bool, len(deps))
	for _, s := range deps {
		ids[s.ID] = true
	}
	if !ids["observability"] || !ids["cloud-deployment"] {
		t.Errorf("containers dependents missing observability/cloud-deployment: %v", ids)
	}
}

func TestTopologicalOrder_PrereqsFirst(t *testing.T) {
	order := TopologicalOrder()
	if len(order) != len(AllSkills()) {
		t.Fatalf("topo order has %d skills, want %d", len(order), len(AllSkills()))
	}
	pos := make(map[string]int, len(order))
	for i, s := range order {
		pos[s.ID] = i
	}
	for _, s := range order {
		for _, p := range s.Prerequisites {
			if pos[p] > pos[s.ID] {
				t.Errorf("skill %q appears before its prerequisite %q", s.ID, p)
			}
		}
	}
}

func TestExpectedHours(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{LevelFoundation, 2},
		{LevelCore, 4},
		{LevelSpecialization, 6},
	}
	for _, tt := range tests {
		s := Skill{Level: tt.level}
		if got := s.ExpectedHours(); got != tt.want {
			t.Errorf("ExpectedHours(level %d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
