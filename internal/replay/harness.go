package replay

import (
	"github.com/jmcardle/pickwheel/internal/engine"
	"github.com/jmcardle/pickwheel/internal/rng"
)

// #region types
// Step is one recorded selection call for replay.
type Step struct {
	Total       int
	Weights     []float64
	Strategy    engine.Strategy
	AvoidRepeat bool
	Signature   string
}

// Result captures the outcome of replaying one step.
type Result struct {
	Step   int
	Index  int // -1 when nothing was selected
	Picked bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps   int
	Picks        int
	NoSelections int
	Distinct     int
}

// #endregion types

// #region replay
// Replay drives the engine through the recorded steps with one seeded
// stream and one shuffle state, exactly as a live context would have run
// them. Same seed and steps ⇒ same results, every time.
func Replay(seed string, steps []Step) []Result {
	src := rng.NewFromString(seed).Source()
	st := &engine.ShuffleState{}
	prev := engine.PrevNone

	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		idx, ok := engine.PickNext(engine.Request{
			Total:       step.Total,
			Weights:     step.Weights,
			Strategy:    step.Strategy,
			Previous:    prev,
			AvoidRepeat: step.AvoidRepeat,
			Signature:   step.Signature,
			Rand:        src,
		}, st)

		if ok {
			prev = idx
		} else {
			// The pool went empty: the next pick starts from scratch.
			prev = engine.PrevNone
			idx = engine.NoIndex
		}
		results = append(results, Result{Step: i, Index: idx, Picked: ok})
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{TotalSteps: len(results)}
	seen := map[int]bool{}
	for _, r := range results {
		if r.Picked {
			s.Picks++
			seen[r.Index] = true
		} else {
			s.NoSelections++
		}
	}
	s.Distinct = len(seen)
	return s
}

// #endregion replay
