package trend

import (
	"math"

	"github.com/wonny/quantdash/internal/contracts"
)

// WeightedRanker blends a ticker's effective rank over consecutive days
// into one persistence score. Lower is stronger.
// ⭐ SSOT: 가중순위 계산은 여기서만
type WeightedRanker struct {
	weights []float64
}

// NewWeightedRanker creates a ranker with the given weight vector,
// newest day first. The vector is expected to sum to 1.0 (validated by
// trendconfig).
func NewWeightedRanker(weights []float64) *WeightedRanker {
	return &WeightedRanker{weights: weights}
}

// Score computes the weighted rank for per-day effective ranks, newest
// first, rounded to 1 decimal. Days beyond the supplied ranks use the
// rank sentinel: the classifier should never hand over a short slice,
// but a malformed snapshot must degrade instead of crashing.
func (r *WeightedRanker) Score(ranks []int) float64 {
	var sum float64
	for i, w := range r.weights {
		rank := contracts.RankSentinel
		if i < len(ranks) {
			rank = ranks[i]
		}
		sum += float64(rank) * w
	}
	return math.Round(sum*10) / 10
}

// Days returns the number of days the weight vector covers.
func (r *WeightedRanker) Days() int {
	return len(r.weights)
}
