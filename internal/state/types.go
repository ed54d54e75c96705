package state

import (
	"time"

	"github.com/jmcardle/pickwheel/internal/engine"
)

// #region context

// Context is one persisted selection context: the strategy, seed, and the
// caller-owned engine state that must survive between picks (previous index
// plus the shuffle bag).
type Context struct {
	ContextID   string
	Name        string
	Strategy    engine.Strategy
	Seed        string
	AvoidRepeat bool
	Previous    int // engine.PrevNone when no pick has happened yet
	Shuffle     engine.ShuffleState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// #endregion context

// #region pick-count

// PickCount is one row of a per-index pick distribution.
type PickCount struct {
	Index int
	Count int
}

// #endregion pick-count
