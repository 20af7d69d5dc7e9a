// ABOUTME: End-to-end suggestion test over the real SQLite log store and knowledge base
// ABOUTME: Covers the 100-entry mining scenario and acceptance into a persisted rule

package suggest

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/harper/sidekick/internal/kb"
	"github.com/harper/sidekick/internal/models"
	"github.com/harper/sidekick/internal/storage"
)

func TestSuggestRules_EndToEnd(t *testing.T) {
	store, err := storage.OpenInMemory(nil)
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	knowledge, err := kb.Load(filepath.Join(t.TempDir(), "rules.yaml"), nil)
	if err != nil {
		t.Fatalf("kb.Load() error = %v", err)
	}

	// 100 interactions: 3 recurring morning open_vscode launches buried
	// in 97 distinct one-off interactions.
	for i := 0; i < 97; i++ {
		err := store.LogInteraction("open_schedule", models.Facts{"noise": fmt.Sprintf("value_%d", i)})
		if err != nil {
			t.Fatalf("LogInteraction() error = %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		err := store.LogInteraction("open_vscode", models.Facts{"time_category": "morning"})
		if err != nil {
			t.Fatalf("LogInteraction() error = %v", err)
		}
	}

	s := NewSuggester(store, knowledge, Options{}, nil)
	candidates, err := s.SuggestRules()
	if err != nil {
		t.Fatalf("SuggestRules() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("SuggestRules() returned %d candidates, want 1", len(candidates))
	}

	candidate := candidates[0]
	if candidate.Actions[1].Command != "open_vscode" {
		t.Errorf("candidate actions = %+v, want open_vscode template", candidate.Actions)
	}

	// Accept the candidate; it becomes a persisted, named rule.
	before := knowledge.Len()
	name, err := Accept(knowledge, candidate)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if knowledge.Len() != before+1 {
		t.Errorf("Len() = %d, want %d after acceptance", knowledge.Len(), before+1)
	}
	if _, ok := knowledge.Get(name); !ok {
		t.Errorf("accepted rule %q not in knowledge base", name)
	}

	// Mining again must not re-suggest the accepted rule.
	candidates, err = s.SuggestRules()
	if err != nil {
		t.Fatalf("second SuggestRules() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("accepted rule suggested again: %v", candidates)
	}
}
