// ABOUTME: Tests for the SQLite interaction log store
// ABOUTME: Verifies append, recency ordering, and the most-recent-N window

package storage

import (
	"encoding/json"
	"testing"

	"github.com/harper/sidekick/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory(nil)
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLogInteraction_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	facts := models.Facts{"time_category": "morning", "vscode_status": "closed"}
	if err := store.LogInteraction("open_vscode", facts); err != nil {
		t.Fatalf("LogInteraction() error = %v", err)
	}

	got, err := store.RecentInteractions(10)
	if err != nil {
		t.Fatalf("RecentInteractions() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("RecentInteractions() returned %d rows, want 1", len(got))
	}

	rec := got[0]
	if rec.ActionType != "open_vscode" {
		t.Errorf("ActionType = %q, want open_vscode", rec.ActionType)
	}
	if rec.Timestamp.IsZero() {
		t.Error("Timestamp not recorded")
	}

	var decoded models.Facts
	if err := json.Unmarshal([]byte(rec.FactsJSON), &decoded); err != nil {
		t.Fatalf("facts payload not valid JSON: %v", err)
	}
	if decoded["time_category"] != "morning" {
		t.Errorf("decoded facts = %v", decoded)
	}
}

func TestRecentInteractions_NewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, action := range []string{"first", "second", "third"} {
		if err := store.LogInteraction(action, models.Facts{"n": action}); err != nil {
			t.Fatalf("LogInteraction(%s) error = %v", action, err)
		}
	}

	got, err := store.RecentInteractions(10)
	if err != nil {
		t.Fatalf("RecentInteractions() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("RecentInteractions() returned %d rows, want 3", len(got))
	}

	wantOrder := []string{"third", "second", "first"}
	for i, want := range wantOrder {
		if got[i].ActionType != want {
			t.Errorf("row %d ActionType = %q, want %q", i, got[i].ActionType, want)
		}
	}
}

func TestRecentInteractions_Limit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 10; i++ {
		if err := store.LogInteraction("action", models.Facts{"i": i}); err != nil {
			t.Fatalf("LogInteraction() error = %v", err)
		}
	}

	got, err := store.RecentInteractions(4)
	if err != nil {
		t.Fatalf("RecentInteractions() error = %v", err)
	}
	if len(got) != 4 {
		t.Errorf("RecentInteractions(4) returned %d rows", len(got))
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 10 {
		t.Errorf("Count() = %d, want 10", n)
	}
}

func TestRecentInteractions_Empty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RecentInteractions(100)
	if err != nil {
		t.Fatalf("RecentInteractions() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("RecentInteractions() on empty store returned %d rows", len(got))
	}
}

func TestOpen_CreatesFileAndDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/interactions.db"

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}
	if err := store.LogInteraction("probe", models.Facts{}); err != nil {
		t.Errorf("LogInteraction() on fresh file store: %v", err)
	}
}
