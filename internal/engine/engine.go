// ABOUTME: Forward-chaining inference engine over the knowledge base
// ABOUTME: Single-pass matcher - collects the actions of every fully satisfied rule
package engine

import (
	"go.uber.org/zap"

	"github.com/harper/sidekick/internal/models"
)

// RuleSource supplies rules in their stored iteration order.
type RuleSource interface {
	Rules() []models.Rule
}

// Engine runs one inference pass over a fact snapshot. It holds no
// mutable state of its own and performs no I/O; dispatching command
// actions is the caller's responsibility.
type Engine struct {
	rules  RuleSource
	logger *zap.Logger
}

// New creates an inference engine reading rules from the given source.
func New(rules RuleSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rules: rules, logger: logger}
}

// RunInference evaluates every rule against the fact snapshot and
// returns the actions of all satisfied rules, each decorated with its
// rule's description. Rules are visited in stored order; a rule's
// conditions are evaluated in listed order and fail fast on the first
// false condition or missing fact. Multiple rules may fire; their
// actions are concatenated without conflict resolution.
func (e *Engine) RunInference(facts models.Facts) []models.DecoratedAction {
	var activated []models.DecoratedAction

	for _, rule := range e.rules.Rules() {
		if !e.satisfied(rule, facts) {
			continue
		}
		e.logger.Debug("rule activated",
			zap.String("rule", rule.Name),
			zap.Int("actions", len(rule.Actions)))
		for _, action := range rule.Actions {
			activated = append(activated, action.Decorated(rule.Description))
		}
	}

	return activated
}

func (e *Engine) satisfied(rule models.Rule, facts models.Facts) bool {
	for _, cond := range rule.Conditions {
		factValue, ok := facts[cond.Fact]
		if !ok {
			// A missing fact means the rule does not apply. Not an error.
			return false
		}
		if !Evaluate(factValue, cond.Operator, cond.Value) {
			return false
		}
	}
	return true
}
