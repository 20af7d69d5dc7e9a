// ABOUTME: Tests for fact providers and the merging collector
// ABOUTME: Verifies clock category boundaries and provider layering

package facts

import (
	"errors"
	"testing"
	"time"

	"github.com/harper/sidekick/internal/models"
)

func TestClockProvider_Categories(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "night"},
		{4, "night"},
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "night"},
		{23, "night"},
	}

	for _, tt := range tests {
		// Monday 2025-06-02 at the given hour.
		at := time.Date(2025, 6, 2, tt.hour, 30, 0, 0, time.Local)
		p := ClockProvider{Now: func() time.Time { return at }}

		got, err := p.Collect()
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if got["time_category"] != tt.want {
			t.Errorf("hour %d: time_category = %v, want %s", tt.hour, got["time_category"], tt.want)
		}
		if got["day_of_week"] != "Monday" {
			t.Errorf("hour %d: day_of_week = %v, want Monday", tt.hour, got["day_of_week"])
		}
		if got["current_hour"] != tt.hour {
			t.Errorf("current_hour = %v, want %d", got["current_hour"], tt.hour)
		}
	}
}

func TestCollector_LaterProvidersWin(t *testing.T) {
	c := NewCollector(nil,
		StaticProvider{Facts: models.Facts{"a": 1, "b": 1}},
		StaticProvider{Facts: models.Facts{"b": 2, "c": 2}},
	)

	got := c.Collect()
	if got["a"] != 1 || got["b"] != 2 || got["c"] != 2 {
		t.Errorf("Collect() = %v, want later providers to override", got)
	}
}

func TestCollector_FailingProviderSkipped(t *testing.T) {
	c := NewCollector(nil,
		failingProvider{},
		StaticProvider{Facts: models.Facts{"ok": true}},
	)

	got := c.Collect()
	if got["ok"] != true {
		t.Errorf("Collect() = %v, want surviving provider facts", got)
	}
	if len(got) != 1 {
		t.Errorf("Collect() = %v, want exactly one fact", got)
	}
}

func TestStaticProvider_ReturnsCopy(t *testing.T) {
	source := models.Facts{"k": "v"}
	p := StaticProvider{Facts: source}

	got, err := p.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got["k"] = "mutated"
	if source["k"] != "v" {
		t.Error("mutating collected facts leaked into the provider")
	}
}

type failingProvider struct{}

func (failingProvider) Collect() (models.Facts, error) {
	return nil, errors.New("sensor offline")
}
