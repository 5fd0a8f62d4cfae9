package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressUpsert_SingleRowPerKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "u1", "prog-basics", "in_progress", nil); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Upsert(ctx, "u1", "prog-basics", "completed", &now); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.Progress(ctx, "u1", []string{"prog-basics"})
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows["prog-basics"]
	if row.Status != "completed" {
		t.Errorf("got status %q, want completed", row.Status)
	}
	if row.CompletedAt == nil || !row.CompletedAt.Equal(now) {
		t.Errorf("got completedAt %v, want %v", row.CompletedAt, now)
	}

	n, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d progress records in table, want 1", n)
	}
}

func TestProgressUpsert_ClearsCompletedAtOnReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.Upsert(ctx, "u1", "prog-basics", "completed", &now); err != nil {
		t.Fatalf("upsert completed: %v", err)
	}
	if err := repo.Upsert(ctx, "u1", "prog-basics", "in_progress", nil); err != nil {
		t.Fatalf("upsert reset: %v", err)
	}

	rows, err := repo.Progress(ctx, "u1", []string{"prog-basics"})
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	row := rows["prog-basics"]
	if row.Status != "in_progress" {
		t.Errorf("got status %q, want in_progress", row.Status)
	}
	if row.CompletedAt != nil {
		t.Errorf("completedAt should be cleared on reset, got %v", row.CompletedAt)
	}
}

func TestProgress_MissingRowsAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "u1", "prog-basics", "in_progress", nil); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := repo.Progress(ctx, "u1", []string{"prog-basics", "sql-fundamentals"})
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1", len(rows))
	}
	if _, ok := rows["sql-fundamentals"]; ok {
		t.Error("expected no row for a skill never touched")
	}

	// Another user sees nothing.
	rows, err = repo.Progress(ctx, "u2", []string{"prog-basics"})
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("user u2 got %d rows, want 0", len(rows))
	}
}

func TestSessionLog_AppendAndChronologicalRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	// Append out of chronological order.
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		err := repo.Append(ctx, SessionRow{
			UserID:       "u1",
			SkillID:      "prog-basics",
			DurationSecs: 3600,
			StartedAt:    base.Add(offset),
			CompletedAt:  base.Add(offset + time.Hour),
		})
		if err != nil {
			t.Fatalf("append session: %v", err)
		}
	}

	rows, err := repo.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("read sessions: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d sessions, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].StartedAt.Before(rows[i-1].StartedAt) {
			t.Errorf("sessions not chronological: %v after %v", rows[i].StartedAt, rows[i-1].StartedAt)
		}
	}
}

func TestAttemptLog_AppendAlways(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	at := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	attempts := []AttemptRow{
		{UserID: "u1", SkillID: "prog-basics", Score: 33, Passed: false, AttemptedAt: at},
		{UserID: "u1", SkillID: "prog-basics", Score: 100, Passed: true, AttemptedAt: at.Add(time.Hour)},
	}
	for _, a := range attempts {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	rows, err := repo.ForUserSkill(ctx, "u1", "prog-basics")
	if err != nil {
		t.Fatalf("read attempts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d attempts, want 2", len(rows))
	}
	if rows[0].Score != 33 || rows[0].Passed {
		t.Errorf("first attempt = %+v, want failed 33", rows[0])
	}
	if rows[1].Score != 100 || !rows[1].Passed {
		t.Errorf("second attempt = %+v, want passed 100", rows[1])
	}
}
