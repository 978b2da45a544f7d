package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		{TextID: 1, Title: "first", Mode: "words", Speed: 200, Units: 40, FinishedAt: base},
		{TextID: 2, Title: "second", Mode: "scroll", Speed: 1000, Units: 300, FinishedAt: base.Add(time.Minute)},
		{TextID: 1, Title: "first", Mode: "words", Speed: 500, Units: 40, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if _, err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	if got[0].Speed != 500 || got[1].Title != "second" {
		t.Errorf("runs not newest first: %+v", got)
	}
	if !got[1].FinishedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("finished_at not preserved: %v", got[1].FinishedAt)
	}
}

func TestRecordDefaultsFinishedAt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if _, err := s.Record(ctx, Run{TextID: 1, Title: "t", Mode: "words", Speed: 200, Units: 3}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].FinishedAt.Before(before) {
		t.Errorf("expected finished_at set to now, got %+v", got)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("expected empty stats, got %+v", st)
	}

	s.Record(ctx, Run{TextID: 1, Title: "a", Mode: "words", Speed: 200, Units: 10})
	s.Record(ctx, Run{TextID: 2, Title: "b", Mode: "words", Speed: 600, Units: 30})

	st, err = s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Runs != 2 || st.Units != 40 || st.MaxSpeed != 600 || st.AvgSpeed != 400 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Record(ctx, Run{TextID: 1, Title: "a", Mode: "words", Speed: 200, Units: 10})
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	runs, err := s.Recent(ctx, 10)
	if err != nil || len(runs) != 1 {
		t.Errorf("expected 1 run after reopen, got %d (%v)", len(runs), err)
	}
}

func TestRunDuration(t *testing.T) {
	r := Run{Speed: 200, Units: 100}
	if r.Duration() != 30*time.Second {
		t.Errorf("expected 30s, got %v", r.Duration())
	}
	if (Run{}).Duration() != 0 {
		t.Error("zero speed should have zero duration")
	}
}
