package recommend

import (
	"testing"
	"time"

	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/skillgraph"
)

var testNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

func skill(id string, level int) skillgraph.Skill {
	return skillgraph.Skill{ID: id, Name: id, Level: level}
}

func TestRecommend_Struggling(t *testing.T) {
	// Level 2 → 4h expected; >6h in progress is struggling.
	efforts := []SkillEffort{
		{Skill: skill("a", 2), Status: progress.StatusInProgress, HoursSpent: 6.5},
	}
	recs := Recommend(efforts, testNow, testNow)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Class != ClassWarning || recs[0].SkillID != "a" {
		t.Errorf("got %+v, want struggling warning for a", recs[0])
	}
}

func TestRecommend_InProgressAtBoundary(t *testing.T) {
	// Exactly 1.5× expected is not yet struggling.
	efforts := []SkillEffort{
		{Skill: skill("a", 2), Status: progress.StatusInProgress, HoursSpent: 6.0},
	}
	recs := Recommend(efforts, testNow, testNow)
	if len(recs) != 1 || recs[0].Class != ClassSuccess || recs[0].SkillID != "" {
		t.Fatalf("expected only the generic success message, got %+v", recs)
	}
}

func TestRecommend_RushedAndGoodPace(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		class Class
	}{
		{"rushed", 1.0, ClassWarning},      // < 2h on a 4h skill
		{"lower bound", 2.0, ClassSuccess}, // exactly 0.5x
		{"good pace", 4.0, ClassSuccess},
		{"upper bound", 6.0, ClassSuccess}, // exactly 1.5x
	}
	for _, tt := range tests {
		efforts := []SkillEffort{
			{Skill: skill("a", 2), Status: progress.StatusCompleted, HoursSpent: tt.hours},
		}
		recs := Recommend(efforts, testNow, testNow)
		if len(recs) != 1 {
			t.Fatalf("%s: got %d recommendations, want 1", tt.name, len(recs))
		}
		if recs[0].Class != tt.class {
			t.Errorf("%s: class = %s, want %s", tt.name, recs[0].Class, tt.class)
		}
	}
}

func TestRecommend_CompletedNoHoursNoMessage(t *testing.T) {
	// Completed with zero logged hours fires neither rushed nor good
	// pace; the generic message covers it.
	efforts := []SkillEffort{
		{Skill: skill("a", 2), Status: progress.StatusCompleted, HoursSpent: 0},
	}
	recs := Recommend(efforts, testNow, testNow)
	if len(recs) != 1 || recs[0].SkillID != "" {
		t.Fatalf("expected only the generic message, got %+v", recs)
	}
}

func TestRecommend_StreakBroken(t *testing.T) {
	efforts := []SkillEffort{
		{Skill: skill("a", 1), Status: progress.StatusInProgress, HoursSpent: 1},
		{Skill: skill("b", 1), Status: progress.StatusInProgress, HoursSpent: 1},
	}
	old := testNow.Add(-4 * 24 * time.Hour)
	recs := Recommend(efforts, old, testNow)
	var info *Recommendation
	for i := range recs {
		if recs[i].Class == ClassInfo {
			info = &recs[i]
		}
	}
	if info == nil {
		t.Fatal("expected a streak-broken info message")
	}
	if info.SkillID != "a" {
		t.Errorf("streak message names %q, want the first in-progress skill", info.SkillID)
	}

	// Recent session: no info message.
	recent := testNow.Add(-24 * time.Hour)
	for _, r := range Recommend(efforts, recent, testNow) {
		if r.Class == ClassInfo {
			t.Errorf("unexpected info message with a recent session: %+v", r)
		}
	}
}

func TestRecommend_StreakRequiresInProgress(t *testing.T) {
	efforts := []SkillEffort{
		{Skill: skill("a", 1), Status: progress.StatusCompleted, HoursSpent: 2},
	}
	old := testNow.Add(-10 * 24 * time.Hour)
	for _, r := range Recommend(efforts, old, testNow) {
		if r.Class == ClassInfo {
			t.Errorf("info message without any in-progress skill: %+v", r)
		}
	}
}

func TestRecommend_NoProgressNoMessages(t *testing.T) {
	efforts := []SkillEffort{
		{Skill: skill("a", 1), Status: progress.StatusNotStarted},
		{Skill: skill("b", 2), Status: progress.StatusNotStarted},
	}
	recs := Recommend(efforts, time.Time{}, testNow)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations with no progress, want 0", len(recs))
	}
}

func TestRecommend_ClassOrdering(t *testing.T) {
	efforts := []SkillEffort{
		{Skill: skill("good", 2), Status: progress.StatusCompleted, HoursSpent: 4},
		{Skill: skill("slow", 2), Status: progress.StatusInProgress, HoursSpent: 10},
		{Skill: skill("fast", 2), Status: progress.StatusCompleted, HoursSpent: 1},
	}
	old := testNow.Add(-5 * 24 * time.Hour)
	recs := Recommend(efforts, old, testNow)

	last := -1
	for _, r := range recs {
		rank := classRank(r.Class)
		if rank < last {
			t.Fatalf("classes out of order: %+v", recs)
		}
		last = rank
	}

	// Stable within class: both warnings keep their input order, so
	// "slow" (earlier in efforts) stays ahead of "fast".
	var warnings []string
	for _, r := range recs {
		if r.Class == ClassWarning {
			warnings = append(warnings, r.SkillID)
		}
	}
	if len(warnings) != 2 || warnings[0] != "slow" || warnings[1] != "fast" {
		t.Errorf("warning order = %v, want [slow fast]", warnings)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	efforts := []SkillEffort{
		{Skill: skill("a", 2), Status: progress.StatusInProgress, HoursSpent: 10},
		{Skill: skill("b", 1), Status: progress.StatusCompleted, HoursSpent: 2},
	}
	old := testNow.Add(-4 * 24 * time.Hour)

	first := Recommend(efforts, old, testNow)
	second := Recommend(efforts, old, testNow)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("recommendation %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
