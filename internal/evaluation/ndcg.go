package evaluation

import (
	"math"
	"slices"
)

// DCG computes the discounted cumulative gain of a ranked relevance
// sequence: sum of r_i / log2(i+1) with 1-based positions.
func DCG(relevances []int) float64 {
	var gain float64
	for i, r := range relevances {
		gain += float64(r) / math.Log2(float64(i)+2)
	}
	return gain
}

// NDCG normalizes DCG against the ideal ordering of the same relevance
// values, yielding a score in [0, 1]. A sequence that is already sorted
// descending scores 1; an all-zero sequence scores 0 by definition.
func NDCG(relevances []int) float64 {
	ideal := slices.Clone(relevances)
	slices.SortFunc(ideal, func(a, b int) int { return b - a })

	idcg := DCG(ideal)
	if idcg == 0 {
		return 0
	}
	return DCG(relevances) / idcg
}
