// ABOUTME: Interaction log persistence - append and most-recent-N reads
// ABOUTME: Fact snapshots are stored as JSON text alongside the action type
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harper/sidekick/internal/models"
)

// LogInteraction appends one interaction record with the current time.
func (s *Store) LogInteraction(actionType string, facts models.Facts) error {
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return fmt.Errorf("encoding facts: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO interactions (timestamp, action_type, facts)
		VALUES (?, ?, ?)
	`, time.Now().UTC().Format(time.RFC3339Nano), actionType, string(factsJSON))
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}

	s.logger.Debug("logged interaction", zap.String("action_type", actionType))
	return nil
}

// RecentInteractions returns the most recent limit interactions, newest
// first. Rows with unparseable timestamps are returned with a zero
// Timestamp rather than dropped; the facts payload is passed through
// as-is for the consumer to parse.
func (s *Store) RecentInteractions(limit int) ([]models.Interaction, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, action_type, facts
		FROM interactions
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var out []models.Interaction
	for rows.Next() {
		var (
			rec models.Interaction
			ts  string
		)
		if err := rows.Scan(&rec.ID, &ts, &rec.ActionType, &rec.FactsJSON); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = parsed
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}
	return out, nil
}

// Count returns the total number of logged interactions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting interactions: %w", err)
	}
	return n, nil
}
