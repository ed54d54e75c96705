package engine

// #region pick-next

// PickNext selects the next index from the pool [0, req.Total). It is pure
// except for st, which only the shuffle strategy mutates. ok=false means
// "no selection" and is a valid steady state, not an error: there is
// nothing to pick from an empty pool.
func PickNext(req Request, st *ShuffleState) (int, bool) {
	if req.Total <= 0 {
		return NoIndex, false
	}
	if req.Total == 1 {
		// Repeat avoidance is inapplicable with a single candidate.
		return 0, true
	}

	if req.Strategy == StrategyShuffle {
		return pickShuffle(req.Total, req.Previous, req.AvoidRepeat, req.Signature, req.Rand, st)
	}

	cands := eligible(req.Total, req.Previous, req.AvoidRepeat)
	if len(cands) == 0 {
		// Only reachable if Total was reported inconsistently; hold the
		// previous pick rather than fail.
		return req.Previous, req.Previous != PrevNone
	}

	if req.Strategy == StrategyWeighted {
		return pickWeighted(cands, req.Weights, req.Rand), true
	}
	return pickUniform(cands, req.Rand), true
}

// #endregion pick-next
