package replay

import (
	"testing"

	"github.com/jmcardle/pickwheel/internal/engine"
)

func shuffleSteps(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{Total: 4, Strategy: engine.StrategyShuffle, Signature: "pool"}
	}
	return steps
}

func TestReplayDeterministic(t *testing.T) {
	steps := []Step{
		{Total: 5, Strategy: engine.StrategyUniform, AvoidRepeat: true},
		{Total: 5, Weights: []float64{1, 0, 2, 2, 1}, Strategy: engine.StrategyWeighted, AvoidRepeat: true},
		{Total: 5, Strategy: engine.StrategyShuffle, Signature: "s1"},
		{Total: 5, Strategy: engine.StrategyShuffle, Signature: "s1"},
		{Total: 0, Strategy: engine.StrategyUniform},
		{Total: 5, Strategy: engine.StrategyUniform, AvoidRepeat: true},
	}

	first := Replay("replay-seed", steps)
	second := Replay("replay-seed", steps)

	if len(first) != len(steps) {
		t.Fatalf("expected %d results, got %d", len(steps), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestReplayEmptyPoolYieldsNoSelection(t *testing.T) {
	results := Replay("x", []Step{{Total: 0, Strategy: engine.StrategyUniform}})
	if results[0].Picked || results[0].Index != -1 {
		t.Fatalf("expected no selection, got %+v", results[0])
	}
}

func TestReplayShuffleCycle(t *testing.T) {
	results := Replay("cycle", shuffleSteps(4))
	seen := map[int]bool{}
	for _, r := range results {
		if !r.Picked {
			t.Fatalf("step %d: no selection", r.Step)
		}
		if seen[r.Index] {
			t.Fatalf("step %d: duplicate %d within cycle", r.Step, r.Index)
		}
		seen[r.Index] = true
	}
	if len(seen) != 4 {
		t.Fatalf("cycle covered %v", seen)
	}
}

func TestReplayThreadsPreviousPick(t *testing.T) {
	steps := make([]Step, 50)
	for i := range steps {
		steps[i] = Step{Total: 3, Strategy: engine.StrategyUniform, AvoidRepeat: true}
	}
	results := Replay("threading", steps)
	for i := 1; i < len(results); i++ {
		if results[i].Index == results[i-1].Index {
			t.Fatalf("step %d repeated %d despite avoidance", i, results[i].Index)
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Step: 0, Index: 1, Picked: true},
		{Step: 1, Index: 2, Picked: true},
		{Step: 2, Index: -1, Picked: false},
		{Step: 3, Index: 1, Picked: true},
	}
	s := Summarize(results)
	if s.TotalSteps != 4 || s.Picks != 3 || s.NoSelections != 1 || s.Distinct != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
