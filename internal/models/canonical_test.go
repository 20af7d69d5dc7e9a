// ABOUTME: Tests for canonical fact-set and condition-set encodings
// ABOUTME: Verifies order independence and cross-type number stability

package models

import "testing"

func TestCanonicalKey_OrderIndependent(t *testing.T) {
	a := Facts{"time_category": "morning", "vscode_status": "closed", "count": 3}
	b := Facts{"count": 3, "vscode_status": "closed", "time_category": "morning"}

	if a.CanonicalKey() != b.CanonicalKey() {
		t.Errorf("same facts gave different keys:\n%s\n%s", a.CanonicalKey(), b.CanonicalKey())
	}
}

func TestCanonicalKey_DistinguishesValues(t *testing.T) {
	a := Facts{"time_category": "morning"}
	b := Facts{"time_category": "evening"}

	if a.CanonicalKey() == b.CanonicalKey() {
		t.Error("different fact values gave the same key")
	}
}

func TestCanonicalKey_NumbersMatchAcrossSources(t *testing.T) {
	// A fact decoded from JSON arrives as float64; one built in memory
	// may be an int literal serialized the same way.
	a := Facts{"current_hour": float64(9)}
	b := Facts{"current_hour": 9}

	if a.CanonicalKey() != b.CanonicalKey() {
		t.Errorf("float64 and int encodings differ: %s vs %s", a.CanonicalKey(), b.CanonicalKey())
	}
}

func TestCanonicalConditions_OrderIndependent(t *testing.T) {
	a := []Condition{
		{Fact: "time_category", Operator: OpEqual, Value: "morning"},
		{Fact: "weather_condition", Operator: OpContains, Value: "mưa"},
	}
	b := []Condition{
		{Fact: "weather_condition", Operator: OpContains, Value: "mưa"},
		{Fact: "time_category", Operator: OpEqual, Value: "morning"},
	}

	if CanonicalConditions(a) != CanonicalConditions(b) {
		t.Error("reordered conditions gave different canonical forms")
	}
}

func TestCanonicalConditions_OperatorMatters(t *testing.T) {
	eq := []Condition{{Fact: "weather_condition", Operator: OpEqual, Value: "mưa"}}
	contains := []Condition{{Fact: "weather_condition", Operator: OpContains, Value: "mưa"}}

	if CanonicalConditions(eq) == CanonicalConditions(contains) {
		t.Error("different operators gave the same canonical form")
	}
}

func TestActionDecorated_CopiesFields(t *testing.T) {
	action := Action{Type: ActionCommand, Command: "open_vscode"}
	decorated := action.Decorated("the rule")

	if decorated.Command != "open_vscode" || decorated.Type != ActionCommand {
		t.Errorf("Decorated() = %+v, lost action fields", decorated)
	}
	if decorated.RuleDescription != "the rule" {
		t.Errorf("RuleDescription = %q, want %q", decorated.RuleDescription, "the rule")
	}
}
