package logging

import "time"

// #region pick-entry
// PickEntry is a single row in the pick_log table.
type PickEntry struct {
	ContextID     string
	Index         int
	Total         int
	Strategy      string
	Signature     string
	Weights       []float64
	EligibleCount int
	Reason        string
	CreatedAt     time.Time
}

// #endregion pick-entry
