package engine

import "github.com/jmcardle/pickwheel/internal/rng"

// #region effective-weight

// effectiveWeight resolves the weight for one index: absent entries default
// to 1, negative entries clamp to 0.
func effectiveWeight(weights []float64, idx int) float64 {
	if idx < 0 || idx >= len(weights) {
		return 1
	}
	if w := weights[idx]; w > 0 {
		return w
	}
	return 0
}

// #endregion effective-weight

// #region pick-uniform

// pickUniform draws one candidate with equal probability.
func pickUniform(cands []int, src rng.Source) int {
	i := int(src() * float64(len(cands)))
	if i >= len(cands) {
		i = len(cands) - 1
	}
	return cands[i]
}

// #endregion pick-uniform

// #region pick-weighted

// pickWeighted draws one candidate with probability proportional to its
// effective weight, walking the cumulative sum. A non-positive total falls
// back to a uniform draw; if rounding lets the walk run off the end, the
// last candidate wins.
func pickWeighted(cands []int, weights []float64, src rng.Source) int {
	var total float64
	for _, c := range cands {
		total += effectiveWeight(weights, c)
	}
	if total <= 0 {
		return pickUniform(cands, src)
	}

	r := src() * total
	for _, c := range cands {
		r -= effectiveWeight(weights, c)
		if r <= 0 {
			return c
		}
	}
	return cands[len(cands)-1]
}

// #endregion pick-weighted
