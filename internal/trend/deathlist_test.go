package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/quantdash/internal/contracts"
)

// priced builds an entry with price and forward P/E set.
func priced(ticker string, rank int, price, fwdPER float64) contracts.RankedStock {
	s := stock(ticker, rank)
	s.Price = contracts.F(price)
	s.FwdPER = contracts.F(fwdPER)
	return s
}

func TestExitTagger_PriceBoundary(t *testing.T) {
	tagger := NewExitTagger(contracts.ExitDeadZone)

	tests := []struct {
		name       string
		todayPrice float64
		want       string
	}{
		{name: "rise exactly 3 percent fires", todayPrice: 103.00, want: string(contracts.ExitTagPriceUp)},
		{name: "rise below 3 percent silent", todayPrice: 102.99, want: ""},
		{name: "drop exactly 3 percent fires", todayPrice: 97.00, want: string(contracts.ExitTagPriceDown)},
		{name: "drop below 3 percent silent", todayPrice: 97.01, want: ""},
		{name: "unchanged silent", todayPrice: 100.00, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yesterday := stock("AAA", 1)
			yesterday.Price = contracts.F(100.00)
			today := stock("AAA", 60)
			today.Price = contracts.F(tt.todayPrice)

			assert.Equal(t, tt.want, tagger.Tags(&today, &yesterday))
		})
	}
}

func TestExitTagger_OutlookFromImpliedEarnings(t *testing.T) {
	tagger := NewExitTagger(contracts.ExitDeadZone)

	// Price flat, forward P/E falls 10 → 9: implied earnings up ~11%.
	yesterday := priced("AAA", 1, 100, 10)
	today := priced("AAA", 60, 100, 9)
	assert.Equal(t, string(contracts.ExitTagOutlookUp), tagger.Tags(&today, &yesterday))

	// Forward P/E rises: implied earnings down.
	today = priced("AAA", 60, 100, 12)
	assert.Equal(t, string(contracts.ExitTagOutlookDown), tagger.Tags(&today, &yesterday))
}

func TestExitTagger_BothAxes(t *testing.T) {
	tagger := NewExitTagger(contracts.ExitDeadZone)

	// Price -10% and implied earnings down: outlook tag leads.
	yesterday := priced("AAA", 1, 100, 10)
	today := priced("AAA", 60, 90, 12)

	want := string(contracts.ExitTagOutlookDown) + " " + string(contracts.ExitTagPriceDown)
	assert.Equal(t, want, tagger.Tags(&today, &yesterday))
}

func TestExitTagger_MissingDataIsSilent(t *testing.T) {
	tagger := NewExitTagger(contracts.ExitDeadZone)

	yesterday := stock("AAA", 1)
	today := stock("AAA", 60)
	assert.Equal(t, "", tagger.Tags(&today, &yesterday))
}

func newTestBuilder() *DeathListBuilder {
	return NewDeathListBuilder(contracts.DefaultDeathTopN, NewExitTagger(contracts.ExitDeadZone), nil)
}

func TestDeathListBuilder_Build(t *testing.T) {
	yesterday := day("20260102",
		stock("AAA", 1),  // stays in window
		stock("BBB", 2),  // demoted below window
		stock("CCC", 3),  // vanishes entirely
		stock("DDD", 60), // never inside the window
	)
	today := day("20260103",
		stock("AAA", 2),
		stock("BBB", 61),
	)

	result := newTestBuilder().Build(today, yesterday)

	assert.Empty(t, result.Message)
	assert.Equal(t, "20260102", result.Dates.Yesterday)
	assert.Equal(t, "20260103", result.Dates.Today)
	require.Len(t, result.DeathList, 2)

	// Ordered by yesterday's rank.
	demoted := result.DeathList[0]
	assert.Equal(t, "BBB", demoted.Ticker)
	assert.Equal(t, 2, demoted.YesterdayRank)
	require.NotNil(t, demoted.TodayRank)
	assert.Equal(t, 61, *demoted.TodayRank)
	assert.False(t, demoted.DroppedOut)

	dropped := result.DeathList[1]
	assert.Equal(t, "CCC", dropped.Ticker)
	assert.Nil(t, dropped.TodayRank)
	assert.True(t, dropped.DroppedOut)
	assert.Empty(t, dropped.ExitReason, "no exit reason without today's record")
}

func TestDeathListBuilder_TagsDemotedStocks(t *testing.T) {
	yesterday := day("20260102", priced("AAA", 1, 100, 10))
	today := day("20260103", priced("AAA", 60, 90, 10))

	result := newTestBuilder().Build(today, yesterday)
	require.Len(t, result.DeathList, 1)

	// -10% price and fwd P/E flat → implied earnings down too.
	assert.Contains(t, result.DeathList[0].ExitReason, string(contracts.ExitTagPriceDown))
	assert.Contains(t, result.DeathList[0].ExitReason, string(contracts.ExitTagOutlookDown))
}

func TestDeathListBuilder_RequiresTwoDays(t *testing.T) {
	result := newTestBuilder().Build(day("20260103"), nil)

	assert.Equal(t, "2일 이상의 데이터가 필요합니다", result.Message)
	assert.Empty(t, result.DeathList)
	assert.NotNil(t, result.DeathList, "serializes as empty array")
}

func TestDeathListBuilder_NoExits(t *testing.T) {
	yesterday := day("20260102", stock("AAA", 1))
	today := day("20260103", stock("AAA", 5))

	result := newTestBuilder().Build(today, yesterday)
	assert.Empty(t, result.DeathList)
	assert.Empty(t, result.Message)
}
