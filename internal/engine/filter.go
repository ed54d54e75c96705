package engine

// #region eligible

// eligible returns the candidate indices for this pick. Repeat avoidance
// never empties the set: with no previous pick, or with a single-entry
// pool, every index stays eligible.
func eligible(total, previous int, avoidRepeat bool) []int {
	if total <= 0 {
		return nil
	}
	if !avoidRepeat || previous == PrevNone || total <= 1 {
		cands := make([]int, total)
		for i := range cands {
			cands[i] = i
		}
		return cands
	}
	cands := make([]int, 0, total-1)
	for i := 0; i < total; i++ {
		if i != previous {
			cands = append(cands, i)
		}
	}
	return cands
}

// EligibleCount reports how many indices survive repeat-avoidance
// filtering for a pick, for provenance logging.
func EligibleCount(total, previous int, avoidRepeat bool) int {
	return len(eligible(total, previous, avoidRepeat))
}

// #endregion eligible
