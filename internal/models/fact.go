// ABOUTME: Facts represent a snapshot of current observations about the user's context
// ABOUTME: Produced fresh by a fact provider for each inference pass
package models

// Facts maps fact names to observed values. Values are strings, bools,
// numbers, or lists of strings. A snapshot has no persistent identity;
// it is owned by the caller for the duration of one inference run.
type Facts map[string]any

// Clone returns a shallow copy of the fact set.
func (f Facts) Clone() Facts {
	out := make(Facts, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
