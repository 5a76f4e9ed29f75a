package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), ".dirdoc", "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndLastRun(t *testing.T) {
	store := newTestStore(t)

	started := time.Now().Add(-time.Second)
	id, err := store.RecordRun(Run{
		StartedAt: started,
		Duration:  420 * time.Millisecond,
		Reason:    ReasonChange,
		Status:    StatusOK,
		Output:    "✅ Directory structure generated",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == 0 {
		t.Error("expected a row id")
	}

	last, err := store.LastRun()
	if err != nil {
		t.Fatalf("last run: %v", err)
	}
	if last == nil {
		t.Fatal("expected a run")
	}
	if last.Reason != ReasonChange || last.Status != StatusOK {
		t.Errorf("unexpected run: %+v", last)
	}
	if last.Duration != 420*time.Millisecond {
		t.Errorf("duration round-trip: %v", last.Duration)
	}
}

func TestLastRunEmpty(t *testing.T) {
	store := newTestStore(t)

	last, err := store.LastRun()
	if err != nil {
		t.Fatalf("last run: %v", err)
	}
	if last != nil {
		t.Errorf("expected nil on empty store, got %+v", last)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(Run{
			StartedAt: base.Add(time.Duration(i) * time.Second),
			Reason:    ReasonChange,
			Status:    StatusOK,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.RecordRun(Run{
		StartedAt: base.Add(10 * time.Second),
		Reason:    ReasonManual,
		Status:    StatusError,
		Error:     "generator exited with status 1",
	}); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Reason != ReasonManual || runs[0].Status != StatusError {
		t.Errorf("newest run should be the failing manual one: %+v", runs[0])
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Error("runs should be ordered newest first")
	}
}
