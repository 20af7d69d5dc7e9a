// ABOUTME: Knowledge base - the persisted, ordered collection of all rules
// ABOUTME: Backed by a human-editable YAML document mapping rule name to rule
package kb

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/harper/sidekick/internal/models"
)

// KnowledgeBase holds all rules in insertion order. The order slice
// mirrors the persisted document order, so iteration is deterministic
// across runs and matches what a user sees when editing the file.
//
// A single instance is owned by the composition root and injected into
// the engine and suggester. The mutex serializes reads and mutations so
// the MCP server can call in from concurrent tool handlers.
type KnowledgeBase struct {
	mu     sync.Mutex
	path   string
	order  []string
	rules  map[string]models.Rule
	logger *zap.Logger
}

// Load reads the rule store at path. A missing or unreadable document
// is not fatal: the built-in default rule set is installed and
// persisted immediately, and the anomaly is logged.
func Load(path string, logger *zap.Logger) (*KnowledgeBase, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	kb := &KnowledgeBase{
		path:   path,
		rules:  make(map[string]models.Rule),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("rule store unreadable, installing defaults",
				zap.String("path", path), zap.Error(err))
		}
		return kb, kb.installDefaults()
	}

	if err := kb.decode(data); err != nil {
		logger.Warn("rule store corrupt, installing defaults",
			zap.String("path", path), zap.Error(err))
		return kb, kb.installDefaults()
	}

	logger.Info("loaded rules", zap.Int("count", len(kb.order)), zap.String("path", path))
	return kb, nil
}

// decode parses the YAML document, preserving the order in which rules
// appear. The document root must be a mapping from rule name to rule.
func (kb *KnowledgeBase) decode(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing rule store: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("rule store root is not a mapping")
	}

	root := doc.Content[0]
	order := make([]string, 0, len(root.Content)/2)
	rules := make(map[string]models.Rule, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var rule models.Rule
		if err := root.Content[i+1].Decode(&rule); err != nil {
			return fmt.Errorf("decoding rule %q: %w", name, err)
		}
		if _, exists := rules[name]; exists {
			return fmt.Errorf("duplicate rule name %q", name)
		}
		rule.Name = name
		order = append(order, name)
		rules[name] = rule
	}

	kb.order = order
	kb.rules = rules
	return nil
}

func (kb *KnowledgeBase) installDefaults() error {
	kb.order = kb.order[:0]
	kb.rules = make(map[string]models.Rule)
	for _, rule := range DefaultRules() {
		kb.order = append(kb.order, rule.Name)
		kb.rules[rule.Name] = rule
	}
	if err := kb.save(); err != nil {
		return fmt.Errorf("persisting default rules: %w", err)
	}
	kb.logger.Info("installed default rules", zap.Int("count", len(kb.order)))
	return nil
}

// Rules returns all rules in their stored order. The slice is a copy;
// callers cannot mutate the knowledge base through it.
func (kb *KnowledgeBase) Rules() []models.Rule {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	out := make([]models.Rule, 0, len(kb.order))
	for _, name := range kb.order {
		out = append(out, kb.rules[name])
	}
	return out
}

// Get returns the rule with the given name, if present.
func (kb *KnowledgeBase) Get(name string) (models.Rule, bool) {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	rule, ok := kb.rules[name]
	return rule, ok
}

// Len returns the number of rules.
func (kb *KnowledgeBase) Len() int {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return len(kb.order)
}

// AddRule inserts a rule under the given name and persists the store.
// It returns false without mutating anything if the name is already
// taken. An error is returned only when persistence itself fails.
func (kb *KnowledgeBase) AddRule(name string, rule models.Rule) (bool, error) {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	if _, exists := kb.rules[name]; exists {
		kb.logger.Warn("rule already exists", zap.String("rule", name))
		return false, nil
	}

	rule.Name = name
	kb.order = append(kb.order, name)
	kb.rules[name] = rule

	if err := kb.save(); err != nil {
		// Roll back so the in-memory view matches the store.
		delete(kb.rules, name)
		kb.order = kb.order[:len(kb.order)-1]
		return false, fmt.Errorf("persisting rule %q: %w", name, err)
	}

	kb.logger.Info("added rule", zap.String("rule", name))
	return true, nil
}

// RemoveRule deletes the named rule and persists the store. It returns
// false if no such rule exists.
func (kb *KnowledgeBase) RemoveRule(name string) (bool, error) {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	rule, exists := kb.rules[name]
	if !exists {
		kb.logger.Warn("rule not found", zap.String("rule", name))
		return false, nil
	}

	idx := -1
	for i, n := range kb.order {
		if n == name {
			idx = i
			break
		}
	}
	delete(kb.rules, name)
	kb.order = append(kb.order[:idx], kb.order[idx+1:]...)

	if err := kb.save(); err != nil {
		kb.rules[name] = rule
		kb.order = append(kb.order, "")
		copy(kb.order[idx+1:], kb.order[idx:])
		kb.order[idx] = name
		return false, fmt.Errorf("persisting after removing rule %q: %w", name, err)
	}

	kb.logger.Info("removed rule", zap.String("rule", name))
	return true, nil
}

// save serializes the full rule set back to disk in stored order.
// Callers must hold kb.mu.
func (kb *KnowledgeBase) save() error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range kb.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		val := &yaml.Node{}
		if err := val.Encode(kb.rules[name]); err != nil {
			return fmt.Errorf("encoding rule %q: %w", name, err)
		}
		root.Content = append(root.Content, key, val)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("marshaling rule store: %w", err)
	}

	if dir := filepath.Dir(kb.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating rule store directory: %w", err)
		}
	}
	if err := os.WriteFile(kb.path, data, 0644); err != nil {
		return fmt.Errorf("writing rule store: %w", err)
	}
	return nil
}
