package trend

import (
	"sort"

	"github.com/wonny/quantdash/internal/contracts"
)

// Factor keys graded over the top-N set.
const (
	FactorValue    = "value"
	FactorQuality  = "quality"
	FactorGrowth   = "growth"
	FactorMomentum = "momentum"
)

// factorScore extracts one factor's raw score from a stock.
// A missing score grades as zero — the stock stays in the set and is
// pushed toward the worst bucket, it is not excluded.
var factorScore = map[string]func(*contracts.RankedStock) float64{
	FactorValue:    func(s *contracts.RankedStock) float64 { return s.ValueScore.Or(0) },
	FactorQuality:  func(s *contracts.RankedStock) float64 { return s.QualityScore.Or(0) },
	FactorGrowth:   func(s *contracts.RankedStock) float64 { return s.GrowthScore.Or(0) },
	FactorMomentum: func(s *contracts.RankedStock) float64 { return s.MomentumScore.Or(0) },
}

// gradeBuckets are left-closed/right-open percentile boundaries,
// best first. Percentiles past the last boundary grade D.
var gradeBuckets = []struct {
	below float64
	grade string
}{
	{0.10, "A+"},
	{0.20, "A"},
	{0.30, "B+"},
	{0.50, "B"},
	{0.70, "C"},
}

// FactorGrader converts per-factor raw scores into percentile-bucketed
// letter grades. Each factor is graded from its own independent sort.
// ⭐ SSOT: 팩터 등급 산정은 여기서만
type FactorGrader struct{}

// NewFactorGrader creates a grader.
func NewFactorGrader() *FactorGrader {
	return &FactorGrader{}
}

// Grade grades every stock on every factor. Ties keep input order, so
// exactly equal scores can straddle a bucket boundary; the snapshot's
// own entry order is the only tie-break.
func (g *FactorGrader) Grade(stocks []contracts.RankedStock) contracts.FactorGradeResult {
	result := make(contracts.FactorGradeResult, len(stocks))
	if len(stocks) == 0 {
		return result
	}
	for _, s := range stocks {
		result[s.Ticker] = make(contracts.FactorGrades, len(factorScore))
	}

	n := len(stocks)
	idx := make([]int, n)

	for factor, score := range factorScore {
		for i := range idx {
			idx[i] = i
		}
		// 스코어 내림차순 (높을수록 좋음), 동점은 입력 순서 유지
		sort.SliceStable(idx, func(a, b int) bool {
			return score(&stocks[idx[a]]) > score(&stocks[idx[b]])
		})

		for pos, i := range idx {
			percentile := float64(pos) / float64(n)
			result[stocks[i].Ticker][factor] = gradeFor(percentile)
		}
	}

	return result
}

// gradeFor maps a percentile (0 = best) to a letter grade.
func gradeFor(percentile float64) string {
	for _, b := range gradeBuckets {
		if percentile < b.below {
			return b.grade
		}
	}
	return "D"
}
