package engine

import (
	"fmt"

	"github.com/jmcardle/pickwheel/internal/rng"
)

// #region strategy

// Strategy identifies the sampling policy for a pick.
type Strategy string

const (
	StrategyUniform  Strategy = "uniform"
	StrategyWeighted Strategy = "weighted"
	StrategyShuffle  Strategy = "shuffle"
)

// ParseStrategy validates a strategy name from flags or RPC fields.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyUniform, StrategyWeighted, StrategyShuffle:
		return Strategy(s), nil
	case "":
		return StrategyUniform, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// #endregion strategy

// #region sentinels

// PrevNone marks a request with no previous pick (first call, or the pool
// went empty since the last one).
const PrevNone = -1

// NoIndex is the index value paired with ok=false when nothing can be
// selected. Callers must branch on ok, not on the value.
const NoIndex = -1

// #endregion sentinels

// #region shuffle-state

// ShuffleState is the caller-owned state for the shuffle strategy. Queue is
// the unconsumed remainder of a random permutation, front next to emit;
// Signature identifies the pool configuration the queue was built for.
// Only shuffle-strategy picks mutate it, and access must be serialized per
// instance by the caller.
type ShuffleState struct {
	Queue     []int  `json:"queue"`
	Signature string `json:"signature"`
}

// #endregion shuffle-state

// #region request

// Request bundles every input for one pick. Weights shorter than Total are
// padded with an implicit weight of 1; negative entries count as 0.
type Request struct {
	Total       int
	Weights     []float64
	Strategy    Strategy
	Previous    int // PrevNone when absent
	AvoidRepeat bool
	Signature   string
	Rand        rng.Source
}

// #endregion request
