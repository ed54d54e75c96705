package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// #region log-pick
// LogPick writes a provenance entry to the pick_log table.
func LogPick(db *sql.DB, entry PickEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var weightsJSON interface{}
	if len(entry.Weights) > 0 {
		data, err := json.Marshal(entry.Weights)
		if err != nil {
			return fmt.Errorf("marshal weights: %w", err)
		}
		weightsJSON = string(data)
	}

	_, err := db.Exec(
		`INSERT INTO pick_log (context_id, pick_index, total, strategy, signature, weights_json, eligible_count, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ContextID,
		entry.Index,
		entry.Total,
		entry.Strategy,
		nullIfEmpty(entry.Signature),
		weightsJSON,
		entry.EligibleCount,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log pick: %w", err)
	}
	return nil
}

// #endregion log-pick

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
