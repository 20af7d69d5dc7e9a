// ABOUTME: Interaction is one row of the append-only user interaction log
// ABOUTME: Records which action the user took and the facts that preceded it
package models

import "time"

// Interaction is a single logged user interaction. FactsJSON holds the
// fact snapshot serialized as JSON, exactly as written at log time;
// consumers tolerate malformed payloads by skipping the row.
type Interaction struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ActionType string    `json:"action_type"`
	FactsJSON  string    `json:"facts"`
}
