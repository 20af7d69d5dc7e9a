// ABOUTME: Order-independent canonical encodings for fact sets and condition sets
// ABOUTME: Used to group log entries and to detect duplicate rules
package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// CanonicalKey returns an order-independent encoding of a fact set.
// Two fact maps with the same keys and values always produce the same
// key regardless of iteration order.
func (f Facts) CanonicalKey() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+canonicalValue(f[k]))
	}
	return strings.Join(parts, ";")
}

// CanonicalConditions returns an order-independent encoding of a
// condition list as sorted (fact, operator, value) triples. Condition
// order is irrelevant to rule identity, only to evaluation order.
func CanonicalConditions(conds []Condition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, c.Fact+"|"+string(c.Operator)+"|"+canonicalValue(c.Value))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

// canonicalValue serializes a value deterministically. JSON covers all
// supported fact value types; anything unencodable falls back to %v.
func canonicalValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
