package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/quantdash/internal/contracts"
)

func TestWeightedRanker_Score(t *testing.T) {
	r := NewWeightedRanker([]float64{0.5, 0.3, 0.2})

	tests := []struct {
		name  string
		ranks []int
		want  float64
	}{
		{name: "mixed ranks", ranks: []int{2, 5, 10}, want: 4.5},
		{name: "stable rank", ranks: []int{4, 4, 4}, want: 4.0},
		{name: "rank one throughout", ranks: []int{1, 1, 1}, want: 1.0},
		{name: "rounds to one decimal", ranks: []int{1, 2, 4}, want: 1.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Score(tt.ranks))
		})
	}
}

func TestWeightedRanker_ScoreShortSlice(t *testing.T) {
	r := NewWeightedRanker([]float64{0.5, 0.3, 0.2})

	// Missing days contribute the sentinel instead of panicking.
	got := r.Score([]int{1})
	want := 0.5*1 + 0.3*float64(contracts.RankSentinel) + 0.2*float64(contracts.RankSentinel)
	assert.InDelta(t, want, got, 0.05)
}

func TestWeightedRanker_Days(t *testing.T) {
	assert.Equal(t, 3, NewWeightedRanker([]float64{0.5, 0.3, 0.2}).Days())
}
