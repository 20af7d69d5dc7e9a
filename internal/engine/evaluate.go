// ABOUTME: Condition evaluation for the inference engine
// ABOUTME: Total predicate - any mismatch or unknown operator yields false, never a panic
package engine

import (
	"reflect"
	"strings"

	"github.com/harper/sidekick/internal/models"
)

// Evaluate tests a single (fact value, operator, condition value) triple.
// It is a pure function and never fails: unsupported operators, type
// mismatches, and incomparable operands all evaluate to false. The
// leniency is deliberate; rule matching treats bad data as "not
// satisfied", not as an error.
func Evaluate(factValue any, op models.Operator, condValue any) bool {
	switch op {
	case models.OpEqual:
		return valuesEqual(factValue, condValue)
	case models.OpNotEqual:
		return !valuesEqual(factValue, condValue)
	case models.OpGreater:
		ord, ok := compareValues(factValue, condValue)
		return ok && ord > 0
	case models.OpLess:
		ord, ok := compareValues(factValue, condValue)
		return ok && ord < 0
	case models.OpGreaterOrEqual:
		ord, ok := compareValues(factValue, condValue)
		return ok && ord >= 0
	case models.OpLessOrEqual:
		ord, ok := compareValues(factValue, condValue)
		return ok && ord <= 0
	case models.OpContains:
		s, ok := factValue.(string)
		if !ok {
			return false
		}
		sub, ok := condValue.(string)
		if !ok {
			return false
		}
		return strings.Contains(s, sub)
	case models.OpIn:
		return listContains(condValue, factValue)
	default:
		return false
	}
}

// valuesEqual compares two values, treating all numeric types as one
// domain so that a fact decoded from JSON (float64) matches a rule
// literal written as an int.
func valuesEqual(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	// DeepEqual rather than == so list-valued facts cannot panic.
	return reflect.DeepEqual(a, b)
}

// compareValues orders two values when both are numbers or both are
// strings. The second return reports whether the operands were
// comparable at all.
func compareValues(a, b any) (int, bool) {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}
	return 0, false
}

// listContains reports whether list holds an element equal to v. A
// non-list value evaluates to false.
func listContains(list any, v any) bool {
	switch l := list.(type) {
	case []any:
		for _, item := range l {
			if valuesEqual(item, v) {
				return true
			}
		}
	case []string:
		for _, item := range l {
			if valuesEqual(item, v) {
				return true
			}
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
