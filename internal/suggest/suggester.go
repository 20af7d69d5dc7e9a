// ABOUTME: Rule suggester - mines the interaction log for recurring fact/action pairs
// ABOUTME: Proposes candidate rules, filtering out weak and already-known ones
package suggest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/harper/sidekick/internal/models"
)

const (
	// DefaultWindow is how many recent interactions are mined per pass.
	DefaultWindow = 100

	// DefaultThreshold is the minimum number of times a fact set must
	// precede the same action before a rule is proposed. Below it,
	// suggestions would flood the user with one-off coincidences.
	DefaultThreshold = 3
)

// LogReader reads the most recent interactions, newest first.
type LogReader interface {
	RecentInteractions(limit int) ([]models.Interaction, error)
}

// RuleSource supplies existing rules for the duplicate check.
type RuleSource interface {
	Rules() []models.Rule
}

// Options tunes the mining pass. Zero values fall back to defaults.
type Options struct {
	// Window is the number of recent log entries to mine.
	Window int

	// Threshold is the minimum dominant-action count per fact set.
	Threshold int

	// ContainsPhrases lists string fact values that should be matched
	// with a substring condition instead of exact equality. The stock
	// entries are weather descriptors; the set is domain-specific and
	// almost certainly incomplete.
	ContainsPhrases []string
}

// DefaultContainsPhrases are the weather descriptors that get substring
// matching when mined into conditions.
func DefaultContainsPhrases() []string {
	return []string{"mưa", "mây đen u ám"}
}

// Suggester analyzes the interaction log and proposes new rules. It is
// read-only against both the log store and the knowledge base;
// acceptance is a separate, human-triggered step.
type Suggester struct {
	logs            LogReader
	rules           RuleSource
	window          int
	threshold       int
	containsPhrases map[string]struct{}
	templates       map[string][]models.Action
	logger          *zap.Logger
}

// NewSuggester creates a suggester over the given log store and rule source.
func NewSuggester(logs LogReader, rules RuleSource, opts Options, logger *zap.Logger) *Suggester {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	phrases := opts.ContainsPhrases
	if phrases == nil {
		phrases = DefaultContainsPhrases()
	}
	phraseSet := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		phraseSet[p] = struct{}{}
	}

	return &Suggester{
		logs:            logs,
		rules:           rules,
		window:          opts.Window,
		threshold:       opts.Threshold,
		containsPhrases: phraseSet,
		templates:       defaultActionTemplates(),
		logger:          logger,
	}
}

// group accumulates per-fact-set action counts during mining.
type group struct {
	facts  models.Facts
	counts map[string]int
}

// SuggestRules mines the recent interaction log and returns candidate
// rules whose dominant action clears the frequency threshold and whose
// condition set does not already exist in the knowledge base.
func (s *Suggester) SuggestRules() ([]models.SuggestedRule, error) {
	interactions, err := s.logs.RecentInteractions(s.window)
	if err != nil {
		return nil, fmt.Errorf("reading interaction log: %w", err)
	}

	groups := make(map[string]*group)
	var keyOrder []string

	for _, rec := range interactions {
		var facts models.Facts
		if err := json.Unmarshal([]byte(rec.FactsJSON), &facts); err != nil {
			// A malformed historical row poisons only itself.
			s.logger.Debug("skipping interaction with malformed facts",
				zap.Int64("id", rec.ID), zap.Error(err))
			continue
		}

		key := facts.CanonicalKey()
		g, ok := groups[key]
		if !ok {
			g = &group{facts: facts, counts: make(map[string]int)}
			groups[key] = g
			keyOrder = append(keyOrder, key)
		}
		g.counts[rec.ActionType]++
	}

	existing := make(map[string]struct{}, len(s.rules.Rules()))
	for _, rule := range s.rules.Rules() {
		existing[models.CanonicalConditions(rule.Conditions)] = struct{}{}
	}

	var suggested []models.SuggestedRule
	for _, key := range keyOrder {
		g := groups[key]
		actionType, count := dominantAction(g.counts)
		if count < s.threshold {
			continue
		}

		candidate, ok := s.buildCandidate(g.facts, actionType)
		if !ok {
			s.logger.Debug("no action template for mined action type",
				zap.String("action_type", actionType))
			continue
		}

		if _, dup := existing[models.CanonicalConditions(candidate.Conditions)]; dup {
			s.logger.Debug("candidate duplicates an existing rule",
				zap.String("action_type", actionType))
			continue
		}

		suggested = append(suggested, candidate)
	}

	s.logger.Info("suggestion pass complete",
		zap.Int("interactions", len(interactions)),
		zap.Int("candidates", len(suggested)))
	return suggested, nil
}

// buildCandidate turns a mined fact set and its dominant action into a
// candidate rule. It fails only when no canned action template exists
// for the action type.
func (s *Suggester) buildCandidate(facts models.Facts, actionType string) (models.SuggestedRule, bool) {
	template, ok := s.templates[actionType]
	if !ok {
		return models.SuggestedRule{}, false
	}

	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conditions := make([]models.Condition, 0, len(keys))
	clauses := make([]string, 0, len(keys))
	for _, k := range keys {
		v := facts[k]
		conditions = append(conditions, models.Condition{
			Fact:     k,
			Operator: s.operatorFor(v),
			Value:    v,
		})
		clauses = append(clauses, fmt.Sprintf("%s là %v", k, v))
	}

	actions := make([]models.Action, len(template))
	copy(actions, template)

	return models.SuggestedRule{
		Description: fmt.Sprintf("Nếu %s, thì đề xuất %s.", strings.Join(clauses, ", "), actionType),
		Conditions:  conditions,
		Actions:     actions,
	}, true
}

// operatorFor picks the condition operator for a mined fact value.
// Strings in the configured phrase set get substring matching; every
// other value gets exact equality.
func (s *Suggester) operatorFor(v any) models.Operator {
	if str, ok := v.(string); ok {
		if _, special := s.containsPhrases[str]; special {
			return models.OpContains
		}
	}
	return models.OpEqual
}

// dominantAction returns the most frequent action type and its count.
// Ties break toward the lexicographically smaller name so mining output
// is deterministic.
func dominantAction(counts map[string]int) (string, int) {
	var (
		best      string
		bestCount int
	)
	for action, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || action < best)) {
			best = action
			bestCount = count
		}
	}
	return best, bestCount
}

// defaultActionTemplates maps known mined action types to the canned
// actions a suggested rule should carry. Action types without a
// template cannot be synthesized into a rule and are dropped.
func defaultActionTemplates() map[string][]models.Action {
	return map[string][]models.Action{
		"open_vscode": {
			{Type: models.ActionRecommendation, Message: "Có vẻ bạn thường mở VSCode khi..."},
			{Type: models.ActionCommand, Command: "open_vscode"},
		},
		"open_schedule": {
			{Type: models.ActionRecommendation, Message: "Có vẻ bạn thường mở lịch trình khi..."},
			{Type: models.ActionCommand, Command: "open_schedule"},
		},
	}
}
