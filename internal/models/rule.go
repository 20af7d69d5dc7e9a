// ABOUTME: Rule, Condition, and Action types for the inference core
// ABOUTME: Rules are named conjunctions of conditions paired with ordered actions
package models

// Operator is the closed set of condition operators. Anything outside
// this set evaluates to false during matching, never to an error.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "ne"
	OpGreater        Operator = "gt"
	OpLess           Operator = "lt"
	OpGreaterOrEqual Operator = "ge"
	OpLessOrEqual    Operator = "le"

	// OpContains tests substring membership; the fact value must be a string.
	OpContains Operator = "contains"

	// OpIn tests membership of the fact value in a list-valued condition.
	OpIn Operator = "in"
)

// Condition is a predicate over a single fact.
type Condition struct {
	Fact     string   `yaml:"fact" json:"fact"`
	Operator Operator `yaml:"operator" json:"operator"`
	Value    any      `yaml:"value" json:"value"`
}

// ActionType distinguishes user-facing recommendations from dispatchable commands.
type ActionType string

const (
	ActionRecommendation ActionType = "recommendation"
	ActionCommand        ActionType = "action"
)

// Action is one outcome of an activated rule. Recommendations carry a
// message; command actions carry a command for the caller to dispatch.
type Action struct {
	Type    ActionType `yaml:"type" json:"type"`
	Message string     `yaml:"message,omitempty" json:"message,omitempty"`
	Command string     `yaml:"command,omitempty" json:"command,omitempty"`
}

// Decorated builds a new DecoratedAction carrying the owning rule's
// description. The stored action is never mutated; every activation
// constructs a fresh value.
func (a Action) Decorated(ruleDescription string) DecoratedAction {
	return DecoratedAction{
		Type:            a.Type,
		Message:         a.Message,
		Command:         a.Command,
		RuleDescription: ruleDescription,
	}
}

// DecoratedAction is an action as emitted by the inference engine,
// annotated with the description of the rule that produced it.
type DecoratedAction struct {
	Type            ActionType `json:"type"`
	Message         string     `json:"message,omitempty"`
	Command         string     `json:"command,omitempty"`
	RuleDescription string     `json:"rule_description"`
}

// Rule is a named conjunction of conditions paired with an ordered list
// of actions. Condition order determines short-circuit evaluation order;
// action order determines emission order.
type Rule struct {
	Name        string      `yaml:"-" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Conditions  []Condition `yaml:"conditions" json:"conditions"`
	Actions     []Action    `yaml:"actions" json:"actions"`
}

// SuggestedRule is a candidate mined from interaction history. It has no
// name; one is assigned only if the user accepts it.
type SuggestedRule struct {
	Description string      `json:"description"`
	Conditions  []Condition `json:"conditions"`
	Actions     []Action    `json:"actions"`
}
