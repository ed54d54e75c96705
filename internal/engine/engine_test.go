package engine

import (
	"testing"

	"github.com/jmcardle/pickwheel/internal/rng"
)

func TestPickNextEmptyPool(t *testing.T) {
	for _, strat := range []Strategy{StrategyUniform, StrategyWeighted, StrategyShuffle} {
		st := &ShuffleState{}
		idx, ok := PickNext(Request{
			Total:    0,
			Strategy: strat,
			Previous: PrevNone,
			Rand:     constSource(0.5),
		}, st)
		if ok {
			t.Fatalf("%s: expected no selection for empty pool, got %d", strat, idx)
		}
	}
}

func TestPickNextSingleCandidate(t *testing.T) {
	for _, strat := range []Strategy{StrategyUniform, StrategyWeighted, StrategyShuffle} {
		st := &ShuffleState{}
		idx, ok := PickNext(Request{
			Total:       1,
			Strategy:    strat,
			Previous:    0,
			AvoidRepeat: true,
			Rand:        constSource(0.9),
		}, st)
		if !ok || idx != 0 {
			t.Fatalf("%s: expected 0, got %d ok=%v", strat, idx, ok)
		}
	}
}

func TestPickNextUniformAvoidsPrevious(t *testing.T) {
	// total=2, previous=0, random()=0 must land on 1.
	idx, ok := PickNext(Request{
		Total:       2,
		Weights:     []float64{1, 1},
		Strategy:    StrategyUniform,
		Previous:    0,
		AvoidRepeat: true,
		Rand:        constSource(0),
	}, &ShuffleState{})
	if !ok || idx != 1 {
		t.Fatalf("expected 1, got %d ok=%v", idx, ok)
	}
}

func TestPickNextWeightedScenario(t *testing.T) {
	idx, ok := PickNext(Request{
		Total:       3,
		Weights:     []float64{0, 0, 4},
		Strategy:    StrategyWeighted,
		Previous:    PrevNone,
		AvoidRepeat: true,
		Rand:        constSource(0.2),
	}, &ShuffleState{})
	if !ok || idx != 2 {
		t.Fatalf("expected 2, got %d ok=%v", idx, ok)
	}
}

func TestPickNextNeverRepeatsWithAvoidance(t *testing.T) {
	for _, strat := range []Strategy{StrategyUniform, StrategyWeighted} {
		src := rng.New(4).Source()
		prev := PrevNone
		for i := 0; i < 2000; i++ {
			idx, ok := PickNext(Request{
				Total:       6,
				Weights:     []float64{1, 2, 3, 1, 2, 3},
				Strategy:    strat,
				Previous:    prev,
				AvoidRepeat: true,
				Rand:        src,
			}, &ShuffleState{})
			if !ok {
				t.Fatalf("%s pick %d: no selection", strat, i)
			}
			if prev != PrevNone && idx == prev {
				t.Fatalf("%s pick %d: repeated %d", strat, i, idx)
			}
			prev = idx
		}
	}
}

func TestPickNextShuffleThreeCallsCoverThree(t *testing.T) {
	src := rng.New(1).Source()
	st := &ShuffleState{}
	seen := map[int]bool{}
	prev := PrevNone
	for i := 0; i < 3; i++ {
		idx, ok := PickNext(Request{
			Total:     3,
			Strategy:  StrategyShuffle,
			Previous:  prev,
			Signature: "pool-abc",
			Rand:      src,
		}, st)
		if !ok {
			t.Fatalf("pick %d: no selection", i)
		}
		if seen[idx] {
			t.Fatalf("pick %d: duplicate %d within the cycle", i, idx)
		}
		seen[idx] = true
		prev = idx
	}
	if len(seen) != 3 {
		t.Fatalf("cycle covered %v", seen)
	}
}

func TestPickNextDeterministicAcrossInstances(t *testing.T) {
	run := func() []int {
		src := rng.NewFromString("fixture-seed").Source()
		st := &ShuffleState{}
		prev := PrevNone
		var out []int
		for i := 0; i < 60; i++ {
			strat := StrategyUniform
			switch i % 3 {
			case 1:
				strat = StrategyWeighted
			case 2:
				strat = StrategyShuffle
			}
			idx, ok := PickNext(Request{
				Total:       7,
				Weights:     []float64{1, 0, 2, 3, 1, 1, 5},
				Strategy:    strat,
				Previous:    prev,
				AvoidRepeat: i%2 == 0,
				Signature:   "pool-v2",
				Rand:        src,
			}, st)
			if !ok {
				t.Fatalf("pick %d: no selection", i)
			}
			out = append(out, idx)
			prev = idx
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pick %d diverged: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestPickNextLeavesStateAloneForNonShuffle(t *testing.T) {
	st := &ShuffleState{Queue: []int{2, 1, 0}, Signature: "keep"}
	PickNext(Request{
		Total:    3,
		Strategy: StrategyUniform,
		Previous: PrevNone,
		Rand:     constSource(0.1),
	}, st)
	if len(st.Queue) != 3 || st.Signature != "keep" {
		t.Fatalf("uniform pick mutated shuffle state: %+v", st)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"uniform", "weighted", "shuffle"} {
		s, err := ParseStrategy(name)
		if err != nil || string(s) != name {
			t.Fatalf("ParseStrategy(%q) = %v, %v", name, s, err)
		}
	}
	if s, err := ParseStrategy(""); err != nil || s != StrategyUniform {
		t.Fatalf("empty strategy should default to uniform, got %v, %v", s, err)
	}
	if _, err := ParseStrategy("lottery"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
