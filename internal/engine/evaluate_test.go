// ABOUTME: Tests for condition evaluation
// ABOUTME: Verifies every operator family and the false-on-mismatch leniency

package engine

import (
	"testing"

	"github.com/harper/sidekick/internal/models"
)

func TestEvaluate_Equality(t *testing.T) {
	tests := []struct {
		name      string
		factValue any
		op        models.Operator
		condValue any
		want      bool
	}{
		{"string equal", "Gym", models.OpEqual, "Gym", true},
		{"string not equal", "Gym", models.OpEqual, "Yoga", false},
		{"bool equal", true, models.OpEqual, true, true},
		{"bool mismatch", true, models.OpEqual, false, false},
		{"int equal", 7, models.OpEqual, 7, true},
		{"json float matches int literal", float64(7), models.OpEqual, 7, true},
		{"number vs string", 7, models.OpEqual, "7", false},
		{"ne true", "Gym", models.OpNotEqual, "Yoga", true},
		{"ne false", "Gym", models.OpNotEqual, "Gym", false},
		{"list equal", []string{"a", "b"}, models.OpEqual, []string{"a", "b"}, true},
		{"list mismatch", []string{"a"}, models.OpEqual, []string{"b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.factValue, tt.op, tt.condValue); got != tt.want {
				t.Errorf("Evaluate(%v, %s, %v) = %v, want %v",
					tt.factValue, tt.op, tt.condValue, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Ordering(t *testing.T) {
	tests := []struct {
		name      string
		factValue any
		op        models.Operator
		condValue any
		want      bool
	}{
		{"gt true", 10, models.OpGreater, 5, true},
		{"gt false", 5, models.OpGreater, 10, false},
		{"gt equal", 5, models.OpGreater, 5, false},
		{"lt true", 5, models.OpLess, 10, true},
		{"ge equal", 5, models.OpGreaterOrEqual, 5, true},
		{"le true", 5, models.OpLessOrEqual, 10, true},
		{"le false", 11, models.OpLessOrEqual, 10, false},
		{"float vs int", 7.5, models.OpGreater, 7, true},
		{"string ordering", "b", models.OpGreater, "a", true},
		{"string vs number is false not panic", "abc", models.OpGreater, 5, false},
		{"number vs string is false", 5, models.OpLess, "abc", false},
		{"bool not orderable", true, models.OpGreater, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.factValue, tt.op, tt.condValue); got != tt.want {
				t.Errorf("Evaluate(%v, %s, %v) = %v, want %v",
					tt.factValue, tt.op, tt.condValue, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Contains(t *testing.T) {
	tests := []struct {
		name      string
		factValue any
		condValue any
		want      bool
	}{
		{"substring present", "mưa nhỏ", "mưa", true},
		{"substring absent", "nắng", "mưa", false},
		{"non-string fact", 42, "mưa", false},
		{"non-string condition", "mưa", 42, false},
		{"list fact is false", []string{"mưa"}, "mưa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.factValue, models.OpContains, tt.condValue); got != tt.want {
				t.Errorf("Evaluate(%v, contains, %v) = %v, want %v",
					tt.factValue, tt.condValue, got, tt.want)
			}
		})
	}
}

func TestEvaluate_In(t *testing.T) {
	tests := []struct {
		name      string
		factValue any
		condValue any
		want      bool
	}{
		{"member of string list", "Saturday", []string{"Saturday", "Sunday"}, true},
		{"not a member", "Monday", []string{"Saturday", "Sunday"}, false},
		{"member of decoded yaml list", "Sunday", []any{"Saturday", "Sunday"}, true},
		{"number member across types", float64(3), []any{1, 2, 3}, true},
		{"condition not a list", "Saturday", "Saturday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.factValue, models.OpIn, tt.condValue); got != tt.want {
				t.Errorf("Evaluate(%v, in, %v) = %v, want %v",
					tt.factValue, tt.condValue, got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnknownOperator(t *testing.T) {
	if Evaluate("a", models.Operator("matches"), "a") {
		t.Error("unknown operator should evaluate false")
	}
	if Evaluate("a", models.Operator(""), "a") {
		t.Error("empty operator should evaluate false")
	}
}
