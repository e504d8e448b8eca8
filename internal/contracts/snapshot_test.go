package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantValid bool
	}{
		{name: "number", input: `3.14`, wantValue: 3.14, wantValid: true},
		{name: "integer", input: `42`, wantValue: 42, wantValid: true},
		{name: "numeric string", input: `"12.5"`, wantValue: 12.5, wantValid: true},
		{name: "null", input: `null`, wantValid: false},
		{name: "non-numeric string", input: `"N/A"`, wantValid: false},
		{name: "empty string", input: `""`, wantValid: false},
		{name: "rounds to 2 decimals", input: `1.005001`, wantValue: 1.01, wantValid: true},
		{name: "negative", input: `-7.25`, wantValue: -7.25, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NullFloat
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.wantValid, n.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, n.Value)
			}
		})
	}
}

func TestNullFloat_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(F(4.5))
	require.NoError(t, err)
	assert.Equal(t, "4.5", string(data))

	data, err = json.Marshal(NullFloat{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestRankedStock_EffectiveRank(t *testing.T) {
	tests := []struct {
		name  string
		stock RankedStock
		want  int
	}{
		{
			name:  "composite rank wins",
			stock: RankedStock{CompositeRank: F(3), Rank: F(7)},
			want:  3,
		},
		{
			name:  "falls back to rank",
			stock: RankedStock{Rank: F(7)},
			want:  7,
		},
		{
			name:  "sentinel when both absent",
			stock: RankedStock{},
			want:  RankSentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stock.EffectiveRank())
		})
	}
}

func TestRankedStock_SectorBucket(t *testing.T) {
	s := RankedStock{Sector: "반도체"}
	assert.Equal(t, "반도체", s.SectorBucket())

	s = RankedStock{Sector: "  "}
	assert.Equal(t, SectorOther, s.SectorBucket())
}

func TestDailySnapshot_TopN(t *testing.T) {
	snap := DailySnapshot{
		Date: "20260102",
		Entries: []RankedStock{
			{Ticker: "AAA", Rank: F(1)},
			{Ticker: "BBB", Rank: F(31)},
			{Ticker: "CCC", CompositeRank: F(2), Rank: F(50)},
			{Ticker: "DDD"}, // no rank → sentinel
		},
	}

	top := snap.TopN(30)
	require.Len(t, top, 2)
	// Snapshot order is preserved
	assert.Equal(t, "AAA", top[0].Ticker)
	assert.Equal(t, "CCC", top[1].Ticker)
}

func TestDailySnapshot_Lookup(t *testing.T) {
	snap := DailySnapshot{
		Entries: []RankedStock{{Ticker: "AAA", Rank: F(1)}},
	}

	found, ok := snap.Lookup("AAA")
	require.True(t, ok)
	assert.Equal(t, "AAA", found.Ticker)

	_, ok = snap.Lookup("ZZZ")
	assert.False(t, ok)
}
