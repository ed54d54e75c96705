package engine

import "github.com/jmcardle/pickwheel/internal/rng"

// #region permutation

// permutation builds a random permutation of [0, total) in place,
// Fisher-Yates driven by src.
func permutation(total int, src rng.Source) []int {
	q := make([]int, total)
	for i := range q {
		q[i] = i
	}
	for i := total - 1; i >= 1; i-- {
		j := int(src() * float64(i+1))
		if j > i {
			j = i
		}
		q[i], q[j] = q[j], q[i]
	}
	return q
}

// #endregion permutation

// #region pick-shuffle

// pickShuffle emits the front of the shuffle bag, refilling it with a fresh
// permutation only when it runs empty. That is what keeps every index
// appearing exactly once per cycle: mid-cycle repeat avoidance is a single
// corrective swap, never a reshuffle.
func pickShuffle(total, previous int, avoidRepeat bool, signature string, src rng.Source, st *ShuffleState) (int, bool) {
	// Pool changed shape or identity: the in-flight bag is for a different
	// pool, restart it.
	if st.Signature != signature {
		st.Queue = nil
		st.Signature = signature
	}

	if len(st.Queue) == 0 {
		st.Queue = permutation(total, src)
	}

	if avoidRepeat && previous != PrevNone {
		switch {
		case len(st.Queue) > 1 && st.Queue[0] == previous:
			// Swap the front with a random non-front slot to break the
			// adjacency without disturbing the rest of the cycle.
			j := 1 + int(src()*float64(len(st.Queue)-1))
			if j >= len(st.Queue) {
				j = len(st.Queue) - 1
			}
			st.Queue[0], st.Queue[j] = st.Queue[j], st.Queue[0]
		case len(st.Queue) == 1 && st.Queue[0] == previous:
			// Cycle boundary: the only entry left is the one just shown.
			// Start the next cycle early and bound the retry to one swap.
			st.Queue = permutation(total, src)
			if len(st.Queue) > 1 && st.Queue[0] == previous {
				st.Queue[0], st.Queue[1] = st.Queue[1], st.Queue[0]
			}
		}
	}

	if len(st.Queue) == 0 {
		return NoIndex, false
	}
	next := st.Queue[0]
	st.Queue = st.Queue[1:]
	return next, true
}

// #endregion pick-shuffle
