// ABOUTME: Fact providers assemble the snapshot fed into each inference pass
// ABOUTME: Collector merges providers in order; a failing provider is logged and skipped
package facts

import (
	"time"

	"go.uber.org/zap"

	"github.com/harper/sidekick/internal/models"
)

// Provider produces a fresh set of facts about the current context.
type Provider interface {
	Collect() (models.Facts, error)
}

// Collector aggregates several providers into one snapshot. Later
// providers win on key collisions, so callers can layer overrides
// (e.g. CLI flags) on top of ambient facts.
type Collector struct {
	providers []Provider
	logger    *zap.Logger
}

// NewCollector creates a collector over the given providers.
func NewCollector(logger *zap.Logger, providers ...Provider) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{providers: providers, logger: logger}
}

// Collect merges all providers' facts. A provider error skips that
// provider only; collection always yields a usable snapshot.
func (c *Collector) Collect() models.Facts {
	merged := make(models.Facts)
	for _, p := range c.providers {
		got, err := p.Collect()
		if err != nil {
			c.logger.Warn("fact provider failed", zap.Error(err))
			continue
		}
		for k, v := range got {
			merged[k] = v
		}
	}
	return merged
}

// ClockProvider derives time-of-day facts. Now is overridable for tests
// and defaults to time.Now.
type ClockProvider struct {
	Now func() time.Time
}

// Collect reports time_category, day_of_week, and current_hour.
// Morning is 05:00-11:59, afternoon 12:00-17:59, night otherwise.
func (p ClockProvider) Collect() (models.Facts, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now()

	category := "night"
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		category = "morning"
	case hour >= 12 && hour < 18:
		category = "afternoon"
	}

	return models.Facts{
		"time_category": category,
		"day_of_week":   t.Weekday().String(),
		"current_hour":  t.Hour(),
	}, nil
}

// StaticProvider serves a fixed fact set, typically built from CLI
// flags or test fixtures.
type StaticProvider struct {
	Facts models.Facts
}

func (p StaticProvider) Collect() (models.Facts, error) {
	return p.Facts.Clone(), nil
}
