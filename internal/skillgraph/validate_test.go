package skillgraph

import (
	"strings"
	"testing"
)

func TestValidate_SeedGraphPasses(t *testing.T) {
	err := Validate()
	if err != nil {
		t.Fatalf("seed graph validation failed: %v", err)
	}
}

func TestValidateSkills_DetectsCycle(t *testing.T) {
	skills := []Skill{
		{ID: "a", Track: TrackBackend, Level: LevelCore, Prerequisites: []string{"b"}},
		{ID: "b", Track: TrackBackend, Level: LevelCore, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateSkills_DetectsDanglingPrereq(t *testing.T) {
	skills := []Skill{
		{ID: "a", Track: TrackBackend, Level: LevelFoundation},
		{ID: "b", Track: TrackBackend, Level: LevelCore, Prerequisites: []string{"nonexistent"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Track: TrackBackend, Level: LevelFoundation},
		{ID: "a", Track: TrackBackend, Level: LevelFoundation},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSkills_RequiresAtLeastOneRoot(t *testing.T) {
	skills := []Skill{
		{ID: "a", Track: TrackBackend, Level: LevelCore, Prerequisites: []string{"b"}},
		{ID: "b", Track: TrackBackend, Level: LevelCore, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidateSkills_AllTracksPopulated(t *testing.T) {
	// Only one track represented
	skills := []Skill{
		{ID: "a", Track: TrackBackend, Level: LevelFoundation},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for missing tracks, got nil")
	}
	if !strings.Contains(err.Error(), "has no skills") {
		t.Errorf("error should mention missing track, got: %v", err)
	}
}

func TestValidateSkills_LevelOutOfRange(t *testing.T) {
	for _, level := range []int{0, 4, -1} {
		skills := []Skill{
			{ID: "a", Track: TrackFoundations, Level: level},
			{ID: "b", Track: TrackBackend, Level: LevelFoundation},
			{ID: "c", Track: TrackData, Level: LevelFoundation},
			{ID: "d", Track: TrackDelivery, Level: LevelFoundation},
		}
		err := validateSkills(skills)
		if err == nil {
			t.Fatalf("expected error for level %d, got nil", level)
		}
		if !strings.Contains(err.Error(), "level") {
			t.Errorf("error should mention level, got: %v", err)
		}
	}
}
