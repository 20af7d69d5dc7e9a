// ABOUTME: Acceptance turns a suggested rule into a persisted knowledge base rule
// ABOUTME: Names are generated from timestamp plus a UUID fragment to avoid collisions
package suggest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/sidekick/internal/models"
)

// RuleAdder is the single knowledge base operation acceptance needs.
type RuleAdder interface {
	AddRule(name string, rule models.Rule) (bool, error)
}

// Accept stores a candidate under a freshly generated name and returns
// that name. Acceptance is always human-triggered; the suggester itself
// never mutates the knowledge base.
func Accept(kb RuleAdder, candidate models.SuggestedRule) (string, error) {
	name := GenerateRuleName()
	added, err := kb.AddRule(name, models.Rule{
		Description: candidate.Description,
		Conditions:  candidate.Conditions,
		Actions:     candidate.Actions,
	})
	if err != nil {
		return "", err
	}
	if !added {
		return "", fmt.Errorf("generated rule name %q already exists", name)
	}
	return name, nil
}

// GenerateRuleName builds a collision-resistant rule name.
func GenerateRuleName() string {
	return fmt.Sprintf("rule_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
