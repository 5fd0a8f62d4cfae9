package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/skilltrail/internal/skillgraph"
	"github.com/abhisek/skilltrail/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepo for one user.
type fakeProgressRepo struct {
	rows    map[string]store.ProgressRow
	upserts int
	fail    error
}

func newFakeRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]store.ProgressRow)}
}

func (f *fakeProgressRepo) Progress(_ context.Context, userID string, skillIDs []string) (map[string]store.ProgressRow, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	result := make(map[string]store.ProgressRow)
	for _, id := range skillIDs {
		if row, ok := f.rows[id]; ok {
			result[id] = row
		}
	}
	return result, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, userID, skillID, status string, completedAt *time.Time) error {
	if f.fail != nil {
		return f.fail
	}
	f.upserts++
	f.rows[skillID] = store.ProgressRow{
		UserID:      userID,
		SkillID:     skillID,
		Status:      status,
		CompletedAt: completedAt,
	}
	return nil
}

func newTestService(repo *fakeProgressRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSetStatus_RootSkillNoPrecondition(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	row, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Status != "in_progress" {
		t.Errorf("got status %q, want in_progress", row.Status)
	}
	if row.CompletedAt != nil {
		t.Error("in_progress must not carry a completion timestamp")
	}
}

func TestSetStatus_PrerequisiteNotMet(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, target := range []Status{StatusInProgress, StatusCompleted} {
		_, err := svc.SetStatus(ctx, "u1", "rest-api-design", target)
		var pnm *ErrPrerequisiteNotMet
		if !errors.As(err, &pnm) {
			t.Fatalf("target %s: expected ErrPrerequisiteNotMet, got %v", target, err)
		}
		if pnm.PrerequisiteID != "http-fundamentals" {
			t.Errorf("target %s: unmet prerequisite = %q, want http-fundamentals", target, pnm.PrerequisiteID)
		}
		if pnm.PrerequisiteName != "HTTP Fundamentals" {
			t.Errorf("target %s: prerequisite name = %q, want HTTP Fundamentals", target, pnm.PrerequisiteName)
		}
	}
	if repo.upserts != 0 {
		t.Errorf("failed gate performed %d upserts, want 0", repo.upserts)
	}
}

func TestSetStatus_FirstUnmetInDeclarationOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// ci-cd declares [version-control, testing-strategies].
	_, err := svc.SetStatus(ctx, "u1", "ci-cd", StatusInProgress)
	var pnm *ErrPrerequisiteNotMet
	if !errors.As(err, &pnm) {
		t.Fatalf("expected ErrPrerequisiteNotMet, got %v", err)
	}
	if pnm.PrerequisiteID != "version-control" {
		t.Errorf("unmet prerequisite = %q, want version-control", pnm.PrerequisiteID)
	}

	now := time.Now().UTC()
	repo.rows["version-control"] = store.ProgressRow{
		UserID: "u1", SkillID: "version-control", Status: "completed", CompletedAt: &now,
	}
	_, err = svc.SetStatus(ctx, "u1", "ci-cd", StatusInProgress)
	if !errors.As(err, &pnm) {
		t.Fatalf("expected ErrPrerequisiteNotMet, got %v", err)
	}
	if pnm.PrerequisiteID != "testing-strategies" {
		t.Errorf("unmet prerequisite = %q, want testing-strategies", pnm.PrerequisiteID)
	}
}

func TestSetStatus_CompletedSetsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	row, err := svc.SetStatus(ctx, "u1", "version-control", StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.CompletedAt == nil {
		t.Fatal("completed status must carry a completion timestamp")
	}
	want := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	if !row.CompletedAt.Equal(want) {
		t.Errorf("completedAt = %v, want %v", row.CompletedAt, want)
	}
}

func TestSetStatus_ResetClearsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	row, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusInProgress)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if row.CompletedAt != nil {
		t.Error("reset to in_progress must clear the completion timestamp")
	}

	// Reset to not_started has no precondition even on gated skills.
	if _, err := svc.SetStatus(ctx, "u1", "rest-api-design", StatusNotStarted); err != nil {
		t.Errorf("not_started reset should bypass the gate: %v", err)
	}
}

func TestSetStatus_UnlocksAfterPrerequisitesComplete(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusCompleted); err != nil {
		t.Fatalf("complete prog-basics: %v", err)
	}
	if _, err := svc.SetStatus(ctx, "u1", "http-fundamentals", StatusCompleted); err != nil {
		t.Fatalf("complete http-fundamentals: %v", err)
	}
	// Direct completion bypassing the quiz is a permitted manual override.
	if _, err := svc.SetStatus(ctx, "u1", "rest-api-design", StatusCompleted); err != nil {
		t.Fatalf("complete rest-api-design: %v", err)
	}
}

func TestSetStatus_UnknownSkill(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.SetStatus(context.Background(), "u1", "nonexistent", StatusInProgress)
	var nf *skillgraph.ErrSkillNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
	if repo.upserts != 0 {
		t.Errorf("unknown skill performed %d upserts, want 0", repo.upserts)
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.SetStatus(context.Background(), "u1", "prog-basics", Status("done"))
	var inv *ErrInvalidStatus
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRoadmap_EmptyProgress(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	rm, err := svc.Roadmap(context.Background(), "u1")
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if len(rm.Entries) != len(skillgraph.AllSkills()) {
		t.Fatalf("got %d entries, want %d", len(rm.Entries), len(skillgraph.AllSkills()))
	}
	if rm.PercentComplete != 0 {
		t.Errorf("percent = %d, want 0", rm.PercentComplete)
	}
	for _, e := range rm.Entries {
		if e.Status != StatusNotStarted {
			t.Errorf("skill %q status = %s, want not_started", e.Skill.ID, e.Status)
		}
		wantLocked := len(e.Skill.Prerequisites) > 0
		if e.Locked != wantLocked {
			t.Errorf("skill %q locked = %v, want %v", e.Skill.ID, e.Locked, wantLocked)
		}
	}
}

func TestRoadmap_PercentAndLocks(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetStatus(ctx, "u1", "cli-fundamentals", StatusCompleted); err != nil {
		t.Fatal(err)
	}

	rm, err := svc.Roadmap(ctx, "u1")
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	// 2 of 17 skills completed: round(200/17) = 12.
	if rm.PercentComplete != 12 {
		t.Errorf("percent = %d, want 12", rm.PercentComplete)
	}

	byID := make(map[string]Entry, len(rm.Entries))
	for _, e := range rm.Entries {
		byID[e.Skill.ID] = e
	}
	if byID["http-fundamentals"].Locked {
		t.Error("http-fundamentals should be unlocked after prog-basics")
	}
	if !byID["rest-api-design"].Locked {
		t.Error("rest-api-design should remain locked")
	}
	if byID["containers"].Locked {
		t.Error("containers should be unlocked after cli-fundamentals")
	}
}

func TestRemainingHours(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	var wantAll float64
	for _, s := range skillgraph.CoreSkills() {
		wantAll += s.ExpectedHours()
	}

	got, err := svc.RemainingHours(ctx, "u1")
	if err != nil {
		t.Fatalf("remaining hours: %v", err)
	}
	if got != wantAll {
		t.Errorf("remaining = %v, want %v", got, wantAll)
	}

	if _, err := svc.SetStatus(ctx, "u1", "prog-basics", StatusCompleted); err != nil {
		t.Fatal(err)
	}
	got, err = svc.RemainingHours(ctx, "u1")
	if err != nil {
		t.Fatalf("remaining hours: %v", err)
	}
	if got != wantAll-2 {
		t.Errorf("remaining = %v, want %v", got, wantAll-2)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"not_started", "in_progress", "completed"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "done", "COMPLETED", "locked"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) expected error", invalid)
		}
	}
}
