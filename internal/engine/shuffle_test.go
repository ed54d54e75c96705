package engine

import (
	"testing"

	"github.com/jmcardle/pickwheel/internal/rng"
)

func TestPermutationCoversRange(t *testing.T) {
	src := rng.New(5).Source()
	q := permutation(6, src)
	if len(q) != 6 {
		t.Fatalf("expected 6 entries, got %v", q)
	}
	seen := map[int]bool{}
	for _, v := range q {
		if v < 0 || v >= 6 || seen[v] {
			t.Fatalf("not a permutation: %v", q)
		}
		seen[v] = true
	}
}

func TestShuffleFullCycleNoDuplicates(t *testing.T) {
	src := rng.New(21).Source()
	st := &ShuffleState{}
	const total = 5

	for cycle := 0; cycle < 3; cycle++ {
		seen := map[int]bool{}
		for i := 0; i < total; i++ {
			idx, ok := pickShuffle(total, PrevNone, false, "pool-v1", src, st)
			if !ok {
				t.Fatalf("cycle %d pick %d: no selection", cycle, i)
			}
			if seen[idx] {
				t.Fatalf("cycle %d: duplicate %d before cycle completed", cycle, idx)
			}
			seen[idx] = true
		}
		if len(seen) != total {
			t.Fatalf("cycle %d covered %d of %d indices", cycle, len(seen), total)
		}
	}
}

func TestShuffleSignatureChangeResetsBag(t *testing.T) {
	src := rng.New(33).Source()
	st := &ShuffleState{}

	// Consume part of a bag built for the old pool.
	pickShuffle(4, PrevNone, false, "old", src, st)
	pickShuffle(4, PrevNone, false, "old", src, st)

	// New signature: a full fresh cycle must cover everything, which the
	// stale two-entry queue could not.
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		idx, ok := pickShuffle(4, PrevNone, false, "new", src, st)
		if !ok {
			t.Fatalf("pick %d: no selection", i)
		}
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Fatalf("stale queue survived signature change: %v", seen)
	}
	if st.Signature != "new" {
		t.Fatalf("signature not adopted: %q", st.Signature)
	}
}

func TestShuffleAvoidRepeatSwapsFront(t *testing.T) {
	st := &ShuffleState{Queue: []int{2, 0, 1}, Signature: "pool"}
	idx, ok := pickShuffle(3, 2, true, "pool", constSource(0), st)
	if !ok {
		t.Fatal("expected a selection")
	}
	if idx == 2 {
		t.Fatal("front equal to previous was not swapped away")
	}
	// A swap, not a reshuffle: the remaining queue still holds the other
	// two indices exactly once.
	rest := map[int]bool{idx: true}
	for _, v := range st.Queue {
		if rest[v] {
			t.Fatalf("duplicate after swap: %v", st.Queue)
		}
		rest[v] = true
	}
	if len(rest) != 3 {
		t.Fatalf("swap lost an index: picked %d, rest %v", idx, st.Queue)
	}
}

func TestShuffleCycleBoundaryRegenerates(t *testing.T) {
	// Last entry of the bag equals the previous pick: the unavoidable
	// boundary case regenerates a full bag and never re-emits previous.
	src := rng.New(77).Source()
	for trial := 0; trial < 200; trial++ {
		st := &ShuffleState{Queue: []int{1}, Signature: "pool"}
		idx, ok := pickShuffle(3, 1, true, "pool", src, st)
		if !ok {
			t.Fatalf("trial %d: no selection", trial)
		}
		if idx == 1 {
			t.Fatalf("trial %d: boundary repeat emitted", trial)
		}
		if len(st.Queue) != 2 {
			t.Fatalf("trial %d: expected regenerated queue of 2, got %v", trial, st.Queue)
		}
	}
}

func TestShuffleNoAvoidanceKeepsAdjacentRepeat(t *testing.T) {
	// Without avoidance the boundary repeat is allowed.
	st := &ShuffleState{Queue: []int{1}, Signature: "pool"}
	idx, ok := pickShuffle(3, 1, false, "pool", constSource(0.4), st)
	if !ok || idx != 1 {
		t.Fatalf("expected 1, got %d ok=%v", idx, ok)
	}
}

func TestShuffleWeightsIgnored(t *testing.T) {
	// The bag covers every index per cycle regardless of weights; weights
	// are simply not an input to this strategy.
	src := rng.New(9).Source()
	st := &ShuffleState{}
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		idx, ok := pickShuffle(3, PrevNone, false, "w", src, st)
		if !ok {
			t.Fatalf("pick %d: no selection", i)
		}
		seen[idx] = true
	}
	if len(seen) != 3 {
		t.Fatalf("cycle incomplete: %v", seen)
	}
}
